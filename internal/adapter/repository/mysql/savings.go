package mysql

import (
	"context"

	savingsDomain "koperasi-backend/internal/domain/savings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) Create(ctx context.Context, b *savingsDomain.Balance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BalanceRepository) GetByMemberID(ctx context.Context, memberID string) (*savingsDomain.Balance, error) {
	var out savingsDomain.Balance
	res := r.db.WithContext(ctx).Where("id_anggota = ?", memberID).First(&out)
	return &out, res.Error
}

func (r *BalanceRepository) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*savingsDomain.Balance, error) {
	var out savingsDomain.Balance
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id_anggota = ?", memberID).
		First(&out)
	return &out, res.Error
}

func (r *BalanceRepository) List(ctx context.Context) ([]savingsDomain.Balance, error) {
	var out []savingsDomain.Balance
	res := r.db.WithContext(ctx).Order("updated_at DESC").Find(&out)
	return out, res.Error
}

func (r *BalanceRepository) Save(ctx context.Context, b *savingsDomain.Balance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

type SavingsTransactionRepository struct{ db *gorm.DB }

func NewSavingsTransactionRepository(db *gorm.DB) *SavingsTransactionRepository {
	return &SavingsTransactionRepository{db: db}
}

func (r *SavingsTransactionRepository) Create(ctx context.Context, t *savingsDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *SavingsTransactionRepository) List(ctx context.Context, memberID string) ([]savingsDomain.Transaction, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if memberID != "" {
		q = q.Where("id_anggota = ?", memberID)
	}
	var out []savingsDomain.Transaction
	res := q.Find(&out)
	return out, res.Error
}

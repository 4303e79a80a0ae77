package mysql

import (
	"context"
	"errors"

	instDomain "koperasi-backend/internal/domain/installment"

	"gorm.io/gorm"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

// Create relies on the (id_pinjaman, angsuran_ke) unique index to catch
// concurrent inserts of the same sequence. Requires gorm's error
// translation (see infrastructure/db).
func (r *InstallmentRepository) Create(ctx context.Context, i *instDomain.Installment) error {
	err := r.db.WithContext(ctx).Create(i).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return instDomain.ErrDuplicateSequence
	}
	return err
}

func (r *InstallmentRepository) MaxSequence(ctx context.Context, loanID uint64) (int, error) {
	var maxSeq *int
	res := r.db.WithContext(ctx).
		Model(&instDomain.Installment{}).
		Where("id_pinjaman = ?", loanID).
		Select("MAX(angsuran_ke)").
		Scan(&maxSeq)
	if res.Error != nil {
		return 0, res.Error
	}
	if maxSeq == nil {
		return 0, nil
	}
	return *maxSeq, nil
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).
		Where("id_pinjaman = ?", loanID).
		Order("angsuran_ke DESC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) List(ctx context.Context) ([]instDomain.Installment, error) {
	var out []instDomain.Installment
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

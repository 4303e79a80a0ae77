package mysql

import (
	"context"

	memberDomain "koperasi-backend/internal/domain/member"

	"gorm.io/gorm"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("id_anggota = ?", memberID).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) List(ctx context.Context) ([]memberDomain.Member, error) {
	var out []memberDomain.Member
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepository) Delete(ctx context.Context, memberID string) error {
	return r.db.WithContext(ctx).
		Where("id_anggota = ?", memberID).
		Delete(&memberDomain.Member{}).Error
}

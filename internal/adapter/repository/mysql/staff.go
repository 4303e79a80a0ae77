package mysql

import (
	"context"

	staffDomain "koperasi-backend/internal/domain/staff"

	"gorm.io/gorm"
)

type StaffRepository struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{db: db} }

func (r *StaffRepository) Create(ctx context.Context, s *staffDomain.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StaffRepository) GetByEmail(ctx context.Context, email string) (*staffDomain.Staff, error) {
	var out staffDomain.Staff
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *StaffRepository) GetByStaffID(ctx context.Context, staffID string) (*staffDomain.Staff, error) {
	var out staffDomain.Staff
	res := r.db.WithContext(ctx).Where("staff_id = ?", staffID).First(&out)
	return &out, res.Error
}

package staffmock

import (
	"context"
	"errors"

	domain "koperasi-backend/internal/domain/staff"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("staffmock: method not implemented")

// Repo is a function-backed mock satisfying staff.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, s *domain.Staff) error
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Staff, error)
	GetByStaffIDFn func(ctx context.Context, staffID string) (*domain.Staff, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Staff) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByStaffID(ctx context.Context, staffID string) (*domain.Staff, error) {
	if m.GetByStaffIDFn != nil {
		return m.GetByStaffIDFn(ctx, staffID)
	}
	return nil, errUnimplemented
}

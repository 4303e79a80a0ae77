package installmentmock

import (
	"context"
	"errors"

	domain "koperasi-backend/internal/domain/installment"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("installmentmock: method not implemented")

// Repo is a function-backed mock satisfying installment.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, i *domain.Installment) error
	MaxSequenceFn  func(ctx context.Context, loanID uint64) (int, error)
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Installment, error)
	ListFn         func(ctx context.Context) ([]domain.Installment, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Installment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) MaxSequence(ctx context.Context, loanID uint64) (int, error) {
	if m.MaxSequenceFn != nil {
		return m.MaxSequenceFn(ctx, loanID)
	}
	return 0, errUnimplemented
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Installment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

package savingsmock

import (
	"context"
	"errors"

	domain "koperasi-backend/internal/domain/savings"
)

var (
	_ domain.BalanceRepository     = (*BalanceRepo)(nil)
	_ domain.TransactionRepository = (*TransactionRepo)(nil)
)

var errUnimplemented = errors.New("savingsmock: method not implemented")

// BalanceRepo is a function-backed mock satisfying
// savings.BalanceRepository.
type BalanceRepo struct {
	CreateFn                 func(ctx context.Context, b *domain.Balance) error
	GetByMemberIDFn          func(ctx context.Context, memberID string) (*domain.Balance, error)
	GetByMemberIDForUpdateFn func(ctx context.Context, memberID string) (*domain.Balance, error)
	ListFn                   func(ctx context.Context) ([]domain.Balance, error)
	SaveFn                   func(ctx context.Context, b *domain.Balance) error
}

func (m *BalanceRepo) Create(ctx context.Context, b *domain.Balance) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BalanceRepo) GetByMemberID(ctx context.Context, memberID string) (*domain.Balance, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *BalanceRepo) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Balance, error) {
	if m.GetByMemberIDForUpdateFn != nil {
		return m.GetByMemberIDForUpdateFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *BalanceRepo) List(ctx context.Context) ([]domain.Balance, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *BalanceRepo) Save(ctx context.Context, b *domain.Balance) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

// TransactionRepo is a function-backed mock satisfying
// savings.TransactionRepository.
type TransactionRepo struct {
	CreateFn func(ctx context.Context, t *domain.Transaction) error
	ListFn   func(ctx context.Context, memberID string) ([]domain.Transaction, error)
}

func (m *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *TransactionRepo) List(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

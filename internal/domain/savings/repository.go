package savings

import "context"

type BalanceRepository interface {
	Create(ctx context.Context, b *Balance) error
	GetByMemberID(ctx context.Context, memberID string) (*Balance, error)
	// GetByMemberIDForUpdate locks the balance row for the duration of
	// the surrounding transaction.
	GetByMemberIDForUpdate(ctx context.Context, memberID string) (*Balance, error)
	List(ctx context.Context) ([]Balance, error)
	Save(ctx context.Context, b *Balance) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	// List returns newest-first; memberID narrows to one member when
	// non-empty.
	List(ctx context.Context, memberID string) ([]Transaction, error)
}

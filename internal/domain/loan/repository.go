package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetPendingByMemberID(ctx context.Context, memberID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}

package installment

import "context"

type Repository interface {
	// Create returns ErrDuplicateSequence when the (loan, sequence)
	// unique index rejects the insert.
	Create(ctx context.Context, i *Installment) error
	// MaxSequence returns the highest recorded sequence for the loan,
	// 0 when the loan has no installments yet.
	MaxSequence(ctx context.Context, loanID uint64) (int, error)
	ListByLoanID(ctx context.Context, loanID uint64) ([]Installment, error)
	List(ctx context.Context) ([]Installment, error)
}

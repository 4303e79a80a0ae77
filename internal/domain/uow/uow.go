package uow

import (
	"context"

	"koperasi-backend/internal/domain/installment"
	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/savings"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Loans        loan.Repository
	Installments installment.Repository
	Members      member.Repository
	Balances     savings.BalanceRepository
	SavingsTxns  savings.TransactionRepository
}

type UnitOfWork interface {
	// WithinTx runs fn in a single transaction; returning an error rolls
	// everything back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. This is
	// the per-loan serialization point for payments.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}

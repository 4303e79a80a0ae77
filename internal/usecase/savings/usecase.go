package savings

import (
	"context"
	"errors"

	domain "koperasi-backend/internal/domain/savings"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	balances domain.BalanceRepository
	txns     domain.TransactionRepository
	uow      uow.UnitOfWork
}

func NewUsecase(balances domain.BalanceRepository, txns domain.TransactionRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{balances: balances, txns: txns, uow: tx}
}

// Deposit records a savings transaction and bumps the member's balance
// in one transaction. The Supabase original left the balance update to a
// database trigger; here it is explicit and atomic.
func (u *Usecase) Deposit(ctx context.Context, in DepositInput) (*TransactionDTO, error) {
	kind := domain.TransactionKind(in.Kind)
	if kind != domain.KindPokok && kind != domain.KindWajib {
		return nil, domain.ErrInvalidKind
	}
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	t := &domain.Transaction{
		TransactionID: id.NewID32(),
		MemberID:      in.MemberID,
		Kind:          kind,
		Amount:        in.Amount,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Balances.GetByMemberIDForUpdate(ctx, in.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBalanceNotFound
			}
			return err
		}
		if err := r.SavingsTxns.Create(ctx, t); err != nil {
			return err
		}
		switch kind {
		case domain.KindPokok:
			b.Pokok += in.Amount
		case domain.KindWajib:
			b.Wajib += in.Amount
		}
		b.Total = b.Pokok + b.Wajib
		return r.Balances.Save(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return &TransactionDTO{
		TransactionID: t.TransactionID,
		MemberID:      t.MemberID,
		Kind:          string(t.Kind),
		Amount:        t.Amount,
		CreatedAt:     t.CreatedAt,
	}, nil
}

// ListTransactions returns deposits newest-first, optionally for one
// member.
func (u *Usecase) ListTransactions(ctx context.Context, memberID string) ([]TransactionDTO, error) {
	rows, err := u.txns.List(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(rows))
	for _, t := range rows {
		out = append(out, TransactionDTO{
			TransactionID: t.TransactionID,
			MemberID:      t.MemberID,
			Kind:          string(t.Kind),
			Amount:        t.Amount,
			CreatedAt:     t.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) ListBalances(ctx context.Context) ([]BalanceDTO, error) {
	rows, err := u.balances.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BalanceDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, BalanceDTO{
			MemberID:  b.MemberID,
			Pokok:     b.Pokok,
			Wajib:     b.Wajib,
			Total:     b.Total,
			UpdatedAt: b.UpdatedAt,
		})
	}
	return out, nil
}

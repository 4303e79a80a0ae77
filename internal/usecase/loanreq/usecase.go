package loanreq

import (
	"context"
	"errors"
	"fmt"

	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/usecase/ledger"
	"koperasi-backend/pkg/id"

	"gorm.io/gorm"
)

const memberIDLen = 32

// Usecase handles loan request intake and reads. Approval, rejection and
// payments live in the ledger usecase.
type Usecase struct {
	loans   loan.Repository
	members member.Repository
}

func NewUsecase(loans loan.Repository, members member.Repository) *Usecase {
	return &Usecase{loans: loans, members: members}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*ledger.LoanDTO, error) {
	if len(in.MemberID) != memberIDLen {
		return nil, errors.New("invalid member_id")
	}
	if in.Principal <= 0 || in.Tenor <= 0 {
		return nil, errors.New("principal and tenor must be positive")
	}
	// Fees are non-negative: the repayable total can never undercut the
	// principal.
	if in.TotalRepayable < in.Principal {
		return nil, errors.New("total_repayable must be at least the principal")
	}

	if _, err := u.members.GetByMemberID(ctx, in.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, member.ErrNotFound) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}

	// One open request per member at a time.
	pending, err := u.loans.GetPendingByMemberID(ctx, in.MemberID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("member %s already has a pending loan: %s", in.MemberID, pending.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	l := &loan.Loan{
		LoanID:                id.NewID32(),
		MemberID:              in.MemberID,
		Principal:             in.Principal,
		TotalRepayable:        in.TotalRepayable,
		Tenor:                 in.Tenor,
		Kind:                  in.Kind,
		Status:                loan.StatusPending,
		InstallmentsRemaining: in.Tenor,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return dto(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*ledger.LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]ledger.LoanDTO, error) {
	rows, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.LoanDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *dto(&rows[i]))
	}
	return out, nil
}

func dto(l *loan.Loan) *ledger.LoanDTO {
	return &ledger.LoanDTO{
		LoanID:                l.LoanID,
		MemberID:              l.MemberID,
		Principal:             l.Principal,
		TotalRepayable:        l.TotalRepayable,
		Tenor:                 l.Tenor,
		Kind:                  l.Kind,
		Status:                string(l.Status),
		AmountPaid:            l.AmountPaid,
		InstallmentsPaid:      l.InstallmentsPaid,
		InstallmentsRemaining: l.InstallmentsRemaining,
		Remaining:             l.Remaining(),
		NextDueDate:           l.NextDueDate,
		CreatedAt:             l.CreatedAt,
	}
}

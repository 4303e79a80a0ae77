package ledger

import (
	"context"
	"errors"

	"koperasi-backend/internal/domain/installment"
	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/uow"
	"koperasi-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the single place payment arithmetic and loan status
// transitions live. Every screen that records a payment goes through it.
type Usecase struct {
	loans        loan.Repository
	installments installment.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, installments installment.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, installments: installments, uow: tx}
}

// RecommendedInstallment is the suggested amount for the next payment:
// the outstanding balance split evenly over the remaining scheduled
// installments, floored. Pure; never negative.
func RecommendedInstallment(l *loan.Loan) int64 {
	remaining := l.Remaining()
	if remaining < 0 {
		remaining = 0
	}
	slots := l.Tenor - l.InstallmentsPaid
	if slots < 1 {
		slots = 1
	}
	return remaining / int64(slots)
}

// resolveAmount turns the payer's intent into one concrete amount.
func resolveAmount(l *loan.Loan, opt PaymentOption) (int64, error) {
	switch opt.Mode {
	case ModePayRemaining:
		return l.Remaining(), nil
	case ModeRecommended:
		if opt.Amount == 0 {
			return RecommendedInstallment(l), nil
		}
		return opt.Amount, nil
	case ModeCustom:
		return opt.Amount, nil
	default:
		return 0, validationf("unknown payment mode %q", opt.Mode)
	}
}

// ValidatePayment checks amount against the loan's rules. It never
// clamps or rounds: a bad amount is refused, not adjusted.
func ValidatePayment(l *loan.Loan, amount int64, mode PaymentMode) error {
	if l.Status != loan.StatusApproved {
		return validationf("loan %s is %s; payments require an approved loan", l.LoanID, l.Status)
	}
	remaining := l.Remaining()
	if remaining <= 0 {
		return validationf("loan %s is already fully paid", l.LoanID)
	}
	if amount <= 0 {
		return validationf("payment amount must be positive")
	}
	if amount > remaining {
		return validationf("payment %d exceeds remaining balance %d", amount, remaining)
	}
	// Guard against accidental under-payment through the auto-filled
	// field. A final payment that exactly clears the loan always passes.
	if mode == ModeRecommended && amount < RecommendedInstallment(l) && amount != remaining {
		return validationf("payment %d is below the recommended installment %d; use a custom payment or pay the remaining balance", amount, RecommendedInstallment(l))
	}
	return nil
}

// ApplyPayment records one installment and updates the loan's aggregates
// as a single transaction. The loan row is locked up-front so concurrent
// payments against the same loan serialize instead of racing.
func (u *Usecase) ApplyPayment(ctx context.Context, loanID string, opt PaymentOption) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		amount, err := resolveAmount(l, opt)
		if err != nil {
			return err
		}
		if err := ValidatePayment(l, amount, opt.Mode); err != nil {
			return err
		}

		// Next sequence comes from the stored ledger, not the loan's
		// cached counter, so any historical drift between the two cannot
		// produce gaps or reuse.
		last, err := r.Installments.MaxSequence(ctx, l.ID)
		if err != nil {
			return persistence(err)
		}
		seq := last + 1

		entry := &installment.Installment{
			InstallmentID: id.NewID32(),
			LoanID:        l.ID,
			LoanPublicID:  l.LoanID,
			MemberID:      l.MemberID,
			Sequence:      seq,
			Amount:        amount,
		}
		if err := r.Installments.Create(ctx, entry); err != nil {
			if errors.Is(err, installment.ErrDuplicateSequence) {
				return conflictf("installment %d for loan %s was recorded concurrently; retry", seq, loanID)
			}
			return persistence(err)
		}

		l.AmountPaid += amount
		l.InstallmentsPaid = seq
		l.InstallmentsRemaining = l.Tenor - seq
		if l.InstallmentsRemaining < 0 {
			l.InstallmentsRemaining = 0
		}
		if l.NextDueDate != nil {
			next := addOneMonth(*l.NextDueDate)
			l.NextDueDate = &next
		}
		if l.AmountPaid >= l.TotalRepayable {
			l.Status = loan.StatusCompleted
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return persistence(err)
		}
		dto = newLoanDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.wrap(err)
	}
	return dto, nil
}

// Approve moves a pending loan to approved and schedules the first due
// date on the 10th of the month after the request was created.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*LoanDTO, error) {
	return u.decide(ctx, loanID, func(l *loan.Loan) {
		l.Status = loan.StatusApproved
		due := firstDueDate(l.CreatedAt)
		l.NextDueDate = &due
	})
}

// Reject moves a pending loan to rejected. Terminal; no other field
// changes.
func (u *Usecase) Reject(ctx context.Context, loanID string) (*LoanDTO, error) {
	return u.decide(ctx, loanID, func(l *loan.Loan) {
		l.Status = loan.StatusRejected
	})
}

func (u *Usecase) decide(ctx context.Context, loanID string, apply func(l *loan.Loan)) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusPending {
			return validationf("loan %s is %s; only pending loans can be decided", l.LoanID, l.Status)
		}
		apply(l)
		if err := r.Loans.Save(ctx, l); err != nil {
			return persistence(err)
		}
		dto = newLoanDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.wrap(err)
	}
	return dto, nil
}

// Recommendation returns the guidance for a loan's next payment.
func (u *Usecase) Recommendation(ctx context.Context, loanID string) (*RecommendationDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, u.wrap(err)
	}
	if l.Status != loan.StatusApproved {
		return nil, validationf("loan %s is %s; recommendations apply to approved loans", l.LoanID, l.Status)
	}
	remaining := l.Remaining()
	slots := l.Tenor - l.InstallmentsPaid
	if slots < 1 {
		slots = 1
	}
	return &RecommendationDTO{
		LoanID:                l.LoanID,
		Remaining:             remaining,
		InstallmentsRemaining: slots,
		Amount:                RecommendedInstallment(l),
	}, nil
}

// Installments lists a loan's payment history, newest first.
func (u *Usecase) Installments(ctx context.Context, loanID string) ([]InstallmentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, u.wrap(err)
	}
	rows, err := u.installments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, persistence(err)
	}
	out := make([]InstallmentDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newInstallmentDTO(&rows[i]))
	}
	return out, nil
}

// wrap normalizes repository errors into the failure taxonomy; record
// misses keep their domain sentinel so handlers can map them to 404.
func (u *Usecase) wrap(err error) error {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, loan.ErrNotFound) {
		return loan.ErrNotFound
	}
	return persistence(err)
}

package ledger

import (
	"time"

	"koperasi-backend/internal/domain/installment"
	"koperasi-backend/internal/domain/loan"
)

// PaymentMode is a closed choice of how the staff operator picked the
// amount. It replaces the old pair of independent custom_payment /
// pay_remaining booleans.
type PaymentMode string

const (
	// ModeRecommended: the auto-filled suggested installment (or an amount
	// typed over it without opting into a custom payment).
	ModeRecommended PaymentMode = "recommended"
	// ModeCustom: the operator explicitly chose an arbitrary amount.
	ModeCustom PaymentMode = "custom"
	// ModePayRemaining: clear the whole outstanding balance in one go.
	ModePayRemaining PaymentMode = "pay_remaining"
)

// PaymentOption is the payer's intent; it is resolved to one concrete
// amount before any validation runs. Amount is ignored for
// ModePayRemaining, and for ModeRecommended a zero Amount means "use the
// recommendation as-is".
type PaymentOption struct {
	Mode   PaymentMode
	Amount int64
}

type LoanDTO struct {
	LoanID                string     `json:"loan_id"`
	MemberID              string     `json:"member_id"`
	Principal             int64      `json:"principal"`
	TotalRepayable        int64      `json:"total_repayable"`
	Tenor                 int        `json:"tenor"`
	Kind                  string     `json:"kind,omitempty"`
	Status                string     `json:"status"`
	AmountPaid            int64      `json:"amount_paid"`
	InstallmentsPaid      int        `json:"installments_paid"`
	InstallmentsRemaining int        `json:"installments_remaining"`
	Remaining             int64      `json:"remaining"`
	NextDueDate           *time.Time `json:"next_due_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type InstallmentDTO struct {
	InstallmentID string    `json:"installment_id"`
	LoanID        string    `json:"loan_id"`
	MemberID      string    `json:"member_id"`
	Sequence      int       `json:"sequence"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecommendationDTO is the payment guidance shown in the payment dialog.
type RecommendationDTO struct {
	LoanID                string `json:"loan_id"`
	Remaining             int64  `json:"remaining"`
	InstallmentsRemaining int    `json:"installments_remaining"`
	Amount                int64  `json:"amount"`
}

func newLoanDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
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

func newInstallmentDTO(i *installment.Installment) *InstallmentDTO {
	return &InstallmentDTO{
		InstallmentID: i.InstallmentID,
		LoanID:        i.LoanPublicID,
		MemberID:      i.MemberID,
		Sequence:      i.Sequence,
		Amount:        i.Amount,
		CreatedAt:     i.CreatedAt,
	}
}

package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("invalid loan status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Loan is one credit extended to a member, repaid in installments.
// Amounts are integer rupiah. Column names match the cooperative's
// pinjaman schema.
type Loan struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID         string `gorm:"column:loan_id;size:32;uniqueIndex:ux_pinjaman_loan_id" json:"loan_id"`
	MemberID       string `gorm:"column:id_anggota;size:32;index:idx_pinjaman_anggota" json:"member_id"`
	Principal      int64  `gorm:"column:jumlah_pinjaman" json:"principal"`
	TotalRepayable int64  `gorm:"column:total_pinjaman" json:"total_repayable"`
	Tenor          int    `gorm:"column:durasi_pinjaman" json:"tenor"`
	Kind           string `gorm:"column:jenis_pinjaman;size:32" json:"kind"`
	Status         Status `gorm:"column:status_pinjaman;type:enum('pending','approved','rejected','completed');default:'pending'" json:"status"`

	// Aggregates kept in lockstep with the angsuran ledger. AmountPaid and
	// InstallmentsPaid are monotonically non-decreasing; InstallmentsPaid
	// never exceeds Tenor.
	AmountPaid            int64      `gorm:"column:total_dibayar" json:"amount_paid"`
	InstallmentsPaid      int        `gorm:"column:angsuran_ke" json:"installments_paid"`
	InstallmentsRemaining int        `gorm:"column:sisa_angsuran" json:"installments_remaining"`
	NextDueDate           *time.Time `gorm:"column:jatuh_tempo;type:date" json:"next_due_date,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "pinjaman" }

// Remaining is the balance still owed on the loan.
func (l *Loan) Remaining() int64 { return l.TotalRepayable - l.AmountPaid }

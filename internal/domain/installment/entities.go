package installment

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("installment not found")
	// ErrDuplicateSequence means the (loan, sequence) pair is already taken,
	// which only happens under concurrent payments against the same loan.
	ErrDuplicateSequence = errors.New("installment sequence already recorded")
)

// Installment is one append-only ledger entry per accepted payment
// (table angsuran). Sequence is 1-based and strictly increasing per loan;
// the composite unique index enforces no reuse at write time.
type Installment struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID string    `gorm:"column:installment_id;size:32;uniqueIndex:ux_angsuran_installment_id" json:"installment_id"`
	LoanID        uint64    `gorm:"column:id_pinjaman;not null;uniqueIndex:ux_angsuran_loan_seq,priority:1" json:"-"`
	LoanPublicID  string    `gorm:"column:loan_id;size:32;index:idx_angsuran_loan" json:"loan_id"`
	MemberID      string    `gorm:"column:id_anggota;size:32;index:idx_angsuran_anggota" json:"member_id"`
	Sequence      int       `gorm:"column:angsuran_ke;not null;uniqueIndex:ux_angsuran_loan_seq,priority:2" json:"sequence"`
	Amount        int64     `gorm:"column:jumlah_angsuran;not null" json:"amount"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Installment) TableName() string { return "angsuran" }

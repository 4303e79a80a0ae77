package savings

import (
	"errors"
	"time"
)

var (
	ErrBalanceNotFound = errors.New("savings balance not found")
	ErrInvalidKind     = errors.New("invalid savings transaction kind")
)

type TransactionKind string

// The cooperative tracks two deposit buckets: principal savings paid once
// on joining (pokok) and the recurring mandatory savings (wajib).
const (
	KindPokok TransactionKind = "pokok"
	KindWajib TransactionKind = "wajib"
)

// Balance is a member's aggregated savings position (table saldo_anggota).
// Total is always Pokok + Wajib.
type Balance struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	MemberID  string    `gorm:"column:id_anggota;size:32;uniqueIndex:ux_saldo_member_id" json:"member_id"`
	Pokok     int64     `gorm:"column:simpanan_pokok" json:"simpanan_pokok"`
	Wajib     int64     `gorm:"column:simpanan_wajib" json:"simpanan_wajib"`
	Total     int64     `gorm:"column:total_simpanan" json:"total_simpanan"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Balance) TableName() string { return "saldo_anggota" }

// Transaction is one recorded savings deposit (table transaksi_simpanan).
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string          `gorm:"column:transaction_id;size:32;uniqueIndex:ux_transaksi_id" json:"transaction_id"`
	MemberID      string          `gorm:"column:id_anggota;size:32;index:idx_transaksi_anggota" json:"member_id"`
	Kind          TransactionKind `gorm:"column:jenis_transaksi;size:16" json:"kind"`
	Amount        int64           `gorm:"column:jumlah_transaksi" json:"amount"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transaksi_simpanan" }

package savings

import "time"

type DepositInput struct {
	MemberID string `json:"member_id"`
	Kind     string `json:"kind"` // pokok | wajib
	Amount   int64  `json:"amount"`
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	MemberID      string    `json:"member_id"`
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type BalanceDTO struct {
	MemberID  string    `json:"member_id"`
	Pokok     int64     `json:"simpanan_pokok"`
	Wajib     int64     `json:"simpanan_wajib"`
	Total     int64     `json:"total_simpanan"`
	UpdatedAt time.Time `json:"updated_at"`
}

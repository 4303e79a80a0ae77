package loanreq

// CreateLoanInput is a new loan request; it always starts pending.
type CreateLoanInput struct {
	MemberID       string `json:"member_id"`
	Principal      int64  `json:"principal"`
	TotalRepayable int64  `json:"total_repayable"`
	Tenor          int    `json:"tenor"`
	Kind           string `json:"kind"`
}

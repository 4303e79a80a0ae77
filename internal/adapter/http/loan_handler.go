package http

import (
	"net/http"

	"koperasi-backend/internal/usecase/ledger"
	"koperasi-backend/internal/usecase/loanreq"

	"github.com/labstack/echo/v4"
)

// LoanHandler serves loan intake/reads plus the ledger operations
// (approve, reject, recommendation, payments).
type LoanHandler struct {
	intake *loanreq.Usecase
	ledger *ledger.Usecase
}

func NewLoanHandler(intake *loanreq.Usecase, led *ledger.Usecase) *LoanHandler {
	return &LoanHandler{intake: intake, ledger: led}
}

type createLoanReq struct {
	MemberID       string `json:"member_id"        validate:"required,hex32"`
	Principal      int64  `json:"principal"        validate:"required,gt=0"`
	TotalRepayable int64  `json:"total_repayable"  validate:"required,gt=0"`
	Tenor          int    `json:"tenor"            validate:"required,gt=0"`
	Kind           string `json:"kind"             validate:"omitempty,max=32"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.intake.Create(c.Request().Context(), loanreq.CreateLoanInput{
		MemberID:       req.MemberID,
		Principal:      req.Principal,
		TotalRepayable: req.TotalRepayable,
		Tenor:          req.Tenor,
		Kind:           req.Kind,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.intake.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.intake.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) ListInstallments(c echo.Context) error {
	out, err := h.ledger.Installments(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetRecommendation(c echo.Context) error {
	dto, err := h.ledger.Recommendation(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	dto, err := h.ledger.Approve(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	dto, err := h.ledger.Reject(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type recordPaymentReq struct {
	Mode   string `json:"mode"   validate:"required,oneof=recommended custom pay_remaining"`
	Amount int64  `json:"amount" validate:"omitempty,gte=0"`
}

func (h *LoanHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.ledger.ApplyPayment(c.Request().Context(), c.Param("loan_id"), ledger.PaymentOption{
		Mode:   ledger.PaymentMode(req.Mode),
		Amount: req.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

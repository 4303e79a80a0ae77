package http

import (
	"net/http"

	"koperasi-backend/internal/usecase/savings"

	"github.com/labstack/echo/v4"
)

type SavingsHandler struct{ uc *savings.Usecase }

func NewSavingsHandler(uc *savings.Usecase) *SavingsHandler { return &SavingsHandler{uc: uc} }

type depositReq struct {
	MemberID string `json:"member_id" validate:"required,hex32"`
	Kind     string `json:"kind"      validate:"required,oneof=pokok wajib"`
	Amount   int64  `json:"amount"    validate:"required,gt=0"`
}

func (h *SavingsHandler) RecordDeposit(c echo.Context) error {
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Deposit(c.Request().Context(), savings.DepositInput{
		MemberID: req.MemberID,
		Kind:     req.Kind,
		Amount:   req.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *SavingsHandler) ListTransactions(c echo.Context) error {
	out, err := h.uc.ListTransactions(c.Request().Context(), c.QueryParam("member_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SavingsHandler) ListBalances(c echo.Context) error {
	out, err := h.uc.ListBalances(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

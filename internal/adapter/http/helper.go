package http

import (
	"errors"
	"net/http"

	"koperasi-backend/internal/domain/loan"
	"koperasi-backend/internal/domain/member"
	"koperasi-backend/internal/domain/savings"
	"koperasi-backend/internal/usecase/auth"
	"koperasi-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

// respondError maps domain and ledger failures onto HTTP statuses:
// validation 422, sequence conflict 409, missing records 404, bad
// credentials 401, storage trouble 500.
func respondError(c echo.Context, err error) error {
	var f *ledger.Failure
	if errors.As(err, &f) {
		switch f.Kind {
		case ledger.KindValidation:
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: f.Reason})
		case ledger.KindSequenceConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: f.Reason})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: f.Reason})
		}
	}
	switch {
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, member.ErrNotFound),
		errors.Is(err, savings.ErrBalanceNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fortitude-backend/internal/domain/borrower"
	"fortitude-backend/internal/domain/ledger"
	"fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/payment"
	"fortitude-backend/internal/usecase/accounting"
	ledgerUC "fortitude-backend/internal/usecase/ledger"
	"fortitude-backend/internal/usecase/loancalc"
)

// respondError maps domain errors to status codes: validation → 400,
// missing references → 404, conflicts the caller must retry with fresh
// state → 409, broken ledger invariants → 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, accounting.ErrInvalidInput),
		errors.Is(err, loancalc.ErrInvalidTerms),
		errors.Is(err, ledgerUC.ErrInvalidAmount),
		errors.Is(err, payment.ErrOverpayment),
		errors.Is(err, borrower.ErrInactive):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, borrower.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, payment.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, borrower.ErrActiveLoans),
		errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrFinancialsLocked):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, ledger.ErrInconsistent):
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "ledger inconsistency"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

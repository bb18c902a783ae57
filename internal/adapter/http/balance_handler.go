package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	ledgerUC "fortitude-backend/internal/usecase/ledger"
)

type BalanceHandler struct{ uc *ledgerUC.Service }

func NewBalanceHandler(uc *ledgerUC.Service) *BalanceHandler { return &BalanceHandler{uc: uc} }

func (h *BalanceHandler) GetBalance(c echo.Context) error {
	b, err := h.uc.Balance(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

type setBalanceReq struct {
	AvailableBalance float64 `json:"available_balance" validate:"dec2"`
	Description      string  `json:"description"       validate:"required"`
}

// SetBalance is the administrative override: no validation against loan
// state, logs the delta as a deposit.
func (h *BalanceHandler) SetBalance(c echo.Context) error {
	var req setBalanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.SetAvailableBalance(c.Request().Context(), req.AvailableBalance, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BalanceHandler) ListTransactions(c echo.Context) error {
	list, err := h.uc.Transactions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *BalanceHandler) Reconcile(c echo.Context) error {
	rep, err := h.uc.Reconcile(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

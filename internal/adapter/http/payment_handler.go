package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fortitude-backend/internal/usecase/accounting"
)

type PaymentHandler struct{ uc *accounting.Service }

func NewPaymentHandler(uc *accounting.Service) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LoanID      string  `json:"loan_id"      validate:"required,hex32"`
	Amount      float64 `json:"amount"       validate:"required,gt=0,dec2"`
	PaymentType string  `json:"payment_type" validate:"omitempty,oneof=emi partial full"`
	PaymentDate string  `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Description string  `json:"description"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := accounting.ApplyPaymentInput{
		LoanID:      req.LoanID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		Description: req.Description,
	}
	if req.PaymentDate != "" {
		t, _ := time.Parse("2006-01-02", req.PaymentDate)
		in.PaymentDate = t
	}
	dto, err := h.uc.ApplyPayment(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	dto, err := h.uc.GetPayment(c.Request().Context(), c.Param("payment_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	if loanID := c.QueryParam("loan_id"); loanID != "" {
		list, err := h.uc.ListPaymentsByLoan(c.Request().Context(), loanID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	}
	list, err := h.uc.ListPayments(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/usecase/accounting"
)

type LoanHandler struct{ uc *accounting.Service }

func NewLoanHandler(uc *accounting.Service) *LoanHandler { return &LoanHandler{uc: uc} }

type durationReq struct {
	Value int    `json:"value" validate:"required,gt=0"`
	Unit  string `json:"unit"  validate:"required,oneof=weeks months"`
}

type createLoanReq struct {
	BorrowerID   string      `json:"borrower_id"   validate:"required,hex32"`
	Principal    float64     `json:"principal"     validate:"required,gt=0,dec2"`
	InterestRate float64     `json:"interest_rate" validate:"gte=0"`
	InterestType string      `json:"interest_type" validate:"omitempty,oneof=simple annual"`
	Duration     durationReq `json:"duration"`
	StartDate    string      `json:"start_date"    validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := accounting.CreateLoanInput{
		BorrowerID:   req.BorrowerID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		InterestType: req.InterestType,
		Duration:     loan.Duration{Value: req.Duration.Value, Unit: loan.DurationUnit(req.Duration.Unit)},
	}
	if req.StartDate != "" {
		t, _ := time.Parse("2006-01-02", req.StartDate)
		in.StartDate = t
	}
	dto, err := h.uc.CreateLoan(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateLoanReq struct {
	BorrowerName *string      `json:"borrower_name"`
	Principal    *float64     `json:"principal"     validate:"omitempty,gt=0,dec2"`
	InterestRate *float64     `json:"interest_rate" validate:"omitempty,gte=0"`
	InterestType *string      `json:"interest_type" validate:"omitempty,oneof=simple annual"`
	Duration     *durationReq `json:"duration"`
	StartDate    *string      `json:"start_date"    validate:"omitempty,datetime=2006-01-02"`
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := accounting.UpdateLoanInput{
		BorrowerName: req.BorrowerName,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		InterestType: req.InterestType,
	}
	if req.Duration != nil {
		d := loan.Duration{Value: req.Duration.Value, Unit: loan.DurationUnit(req.Duration.Unit)}
		in.Duration = &d
	}
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err == nil {
			in.StartDate = &t
		}
	}
	dto, err := h.uc.UpdateLoan(c.Request().Context(), c.Param("loan_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.GetLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	list, err := h.uc.ListLoans(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	if err := h.uc.DeleteLoan(c.Request().Context(), c.Param("loan_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "loan deleted"})
}

func (h *LoanHandler) MarkDefaulted(c echo.Context) error {
	dto, err := h.uc.MarkDefaulted(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fortitude-backend/internal/usecase/accounting"
)

type BorrowerHandler struct{ uc *accounting.Service }

func NewBorrowerHandler(uc *accounting.Service) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Name        string `json:"name"          validate:"required"`
	Phone       string `json:"phone"         validate:"required"`
	Address     string `json:"address"`
	Email       string `json:"email"         validate:"omitempty,email"`
	JoiningDate string `json:"joining_date"  validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status"        validate:"omitempty,oneof=active inactive"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := accounting.CreateBorrowerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
		Status:  req.Status,
	}
	if req.JoiningDate != "" {
		t, _ := time.Parse("2006-01-02", req.JoiningDate)
		in.JoiningDate = t
	}
	dto, err := h.uc.CreateBorrower(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateBorrowerReq struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Status  *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (h *BorrowerHandler) UpdateBorrower(c echo.Context) error {
	var req updateBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Status != nil {
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
	}
	dto, err := h.uc.UpdateBorrower(c.Request().Context(), c.Param("borrower_id"), accounting.UpdateBorrowerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
		Status:  req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	dto, err := h.uc.GetBorrower(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) ListBorrowers(c echo.Context) error {
	list, err := h.uc.ListBorrowers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *BorrowerHandler) DeleteBorrower(c echo.Context) error {
	if err := h.uc.DeleteBorrower(c.Request().Context(), c.Param("borrower_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "borrower deleted"})
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fortitude-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Service }

func NewReportHandler(uc *report.Service) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) GetReports(c echo.Context) error {
	rep, err := h.uc.Generate(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

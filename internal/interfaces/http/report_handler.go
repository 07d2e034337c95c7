package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/reporting"
)

// ReportHandler expõe o painel e os relatórios financeiros.
type ReportHandler struct {
	dashboard *reporting.DashboardUseCase
	reports   *reporting.ReportsUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(dashboard *reporting.DashboardUseCase, reports *reporting.ReportsUseCase) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, reports: reports}
}

// DashboardSummary GET /api/dashboard/summary
func (h *ReportHandler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := h.dashboard.Summary()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}

// Statement GET /api/reports/dre?month=YYYY-MM
func (h *ReportHandler) Statement(c *fiber.Ctx) error {
	statement, err := h.reports.Statement(c.Query("month"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(statement)
}

// CashFlow GET /api/reports/cashflow?month=YYYY-MM
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	report, err := h.reports.CashFlow(c.Query("month"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

// Payables GET /api/reports/payables
func (h *ReportHandler) Payables(c *fiber.Ctx) error {
	report, err := h.reports.Payables()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

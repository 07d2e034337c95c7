package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/export"
)

// FinancialHandler trata as requisições HTTP de lançamentos financeiros.
type FinancialHandler struct {
	uc  *usecase.FinancialUseCase
	csv *export.FinancialCSVExporter
}

// NewFinancialHandler constrói o handler.
func NewFinancialHandler(uc *usecase.FinancialUseCase, csv *export.FinancialCSVExporter) *FinancialHandler {
	return &FinancialHandler{uc: uc, csv: csv}
}

// Create POST /api/financial-records
func (h *FinancialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinancialRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	record, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, date e amount não negativo são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update PUT /api/financial-records/:id
func (h *FinancialHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateFinancialRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	record, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(record)
}

// Delete DELETE /api/financial-records/:id
func (h *FinancialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List GET /api/financial-records — devolve o banco inteiro; as telas
// derivam mês, DRE e caixa em memória.
func (h *FinancialHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ExportCSV GET /api/financial-records/export?month=YYYY-MM
func (h *FinancialHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.csv.Export(c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="lancamentos.csv"`)
	return c.Send(data)
}

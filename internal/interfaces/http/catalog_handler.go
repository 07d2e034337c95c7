package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
)

// CatalogHandler agrupa os cadastros simples: serviços, fornecedores e
// membros da equipe. As três coleções compartilham o mesmo formato de rota.
type CatalogHandler struct {
	services  *usecase.ServiceUseCase
	suppliers *usecase.SupplierUseCase
	team      *usecase.TeamUseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(services *usecase.ServiceUseCase, suppliers *usecase.SupplierUseCase, team *usecase.TeamUseCase) *CatalogHandler {
	return &CatalogHandler{services: services, suppliers: suppliers, team: team}
}

// CreateService POST /api/services
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	service, err := h.services.Create(in)
	if err != nil {
		return catalogError(c, err, "nome do serviço é obrigatório")
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService PUT /api/services/:id
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	service, err := h.services.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "nome do serviço é obrigatório")
	}
	return c.JSON(service)
}

// DeleteService DELETE /api/services/:id
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.services.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListServices GET /api/services
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	page, ok := parsePage(c)
	if !ok {
		return nil
	}
	list, err := h.services.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// CreateSupplier POST /api/suppliers
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	supplier, err := h.suppliers.Create(in)
	if err != nil {
		return catalogError(c, err, "nome do fornecedor é obrigatório")
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// UpdateSupplier PUT /api/suppliers/:id
func (h *CatalogHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	supplier, err := h.suppliers.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "nome do fornecedor é obrigatório")
	}
	return c.JSON(supplier)
}

// DeleteSupplier DELETE /api/suppliers/:id
func (h *CatalogHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.suppliers.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSuppliers GET /api/suppliers
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	page, ok := parsePage(c)
	if !ok {
		return nil
	}
	list, err := h.suppliers.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// CreateTeamMember POST /api/team
func (h *CatalogHandler) CreateTeamMember(c *fiber.Ctx) error {
	var in dto.CreateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	member, err := h.team.Create(in)
	if err != nil {
		return catalogError(c, err, "nome do membro é obrigatório")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateTeamMember PUT /api/team/:id
func (h *CatalogHandler) UpdateTeamMember(c *fiber.Ctx) error {
	var in dto.CreateTeamMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	member, err := h.team.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "nome do membro é obrigatório")
	}
	return c.JSON(member)
}

// DeleteTeamMember DELETE /api/team/:id
func (h *CatalogHandler) DeleteTeamMember(c *fiber.Ctx) error {
	if err := h.team.Delete(c.Params("id")); err != nil {
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTeamMembers GET /api/team
func (h *CatalogHandler) ListTeamMembers(c *fiber.Ctx) error {
	page, ok := parsePage(c)
	if !ok {
		return nil
	}
	list, err := h.team.List(page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

func catalogError(c *fiber.Ctx, err error, validationMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMsg})
	}
	return internalError(c, err)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parsePage lê limit/offset da query; em caso de erro já escreve a
// resposta 400 e devolve ok=false.
func parsePage(c *fiber.Ctx) (dto.PageRequest, bool) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de paginação inválidos"})
		return page, false
	}
	page.DefaultPage()
	return page, true
}

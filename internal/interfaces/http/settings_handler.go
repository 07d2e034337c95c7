package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
)

// SettingsHandler trata os dados cadastrais da empresa.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(settings)
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanySettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	settings, err := h.uc.Update(in)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(settings)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
)

// SettingsHandler maneja las preferencias de la aplicación (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetTheme godoc
// @Summary      Tema vigente (light por defecto)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingResponse
// @Router       /api/settings/theme [get]
func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	out, err := h.uc.GetTheme()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetTheme godoc
// @Summary      Cambiar el tema (light o dark)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PutSettingRequest  true  "Tema"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/theme [put]
func (h *SettingsHandler) SetTheme(c *fiber.Ctx) error {
	var in dto.PutSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetTheme(in.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosco-api/internal/application/usecase"
)

// TrialHandler expone el estado del período de prueba para el banner.
type TrialHandler struct {
	uc *usecase.TrialUseCase
}

// NewTrialHandler construye el handler.
func NewTrialHandler(uc *usecase.TrialUseCase) *TrialHandler {
	return &TrialHandler{uc: uc}
}

// Status godoc
// @Summary      Estado del período de prueba del usuario autenticado
// @Tags         trial
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trial [get]
func (h *TrialHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

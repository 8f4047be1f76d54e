package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosco-api/internal/application/dto"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/domain/scanner"
)

// ScannerHandler clasifica secuencias de teclas del campo de código de barras
// y resuelve el producto cuando el código completa.
type ScannerHandler struct {
	products *usecase.ProductUseCase
}

// NewScannerHandler construye el handler.
func NewScannerHandler(products *usecase.ProductUseCase) *ScannerHandler {
	return &ScannerHandler{products: products}
}

// Decode godoc
// @Summary      Clasificar una secuencia de teclas (escáner vs tipeo) y resolver el producto
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanEventsRequest  true  "Caracteres con desplazamiento en ms"
// @Success      200   {object}  dto.ScanResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scanner/events [post]
func (h *ScannerHandler) Decode(c *fiber.Ctx) error {
	var in dto.ScanEventsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "secuencia vacía"})
	}

	// Los offsets relativos se anclan a un instante base arbitrario; solo
	// importan los gaps entre teclas.
	base := time.Unix(0, 0)
	events := make([]scanner.Event, 0, len(in.Events))
	for _, ev := range in.Events {
		if ev.Char == "" {
			continue
		}
		events = append(events, scanner.Event{
			Char: []rune(ev.Char)[0],
			At:   base.Add(time.Duration(ev.OffsetMs) * time.Millisecond),
		})
	}

	code, ok, burst := scanner.Run(events, scanner.DefaultMinLength)
	out := dto.ScanResultResponse{Complete: ok, Burst: burst, Code: code}
	if ok {
		product, err := h.products.LookupByBarcode(code)
		if err != nil {
			return respondError(c, err)
		}
		out.Product = product
	}
	return c.JSON(out)
}

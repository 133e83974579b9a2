package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/labels"
)

// LabelHandler imprime etiquetas de producto.
type LabelHandler struct {
	uc *labels.LabelUseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *labels.LabelUseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar etiquetas
// @Tags         etiquetas
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelRequest  true  "produto_id, data_producao, lote, copias (1 a 200)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/etiquetas [post]
func (h *LabelHandler) Generate(c *fiber.Ctx) error {
	var in dto.LabelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	data, err := h.uc.Generate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiquetas.pdf"`)
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/application/usecase"
)

// OptionsHandler alimenta los selects del frontend ({value, label}).
type OptionsHandler struct {
	uc *usecase.OptionsUseCase
}

// NewOptionsHandler construye el handler.
func NewOptionsHandler(uc *usecase.OptionsUseCase) *OptionsHandler {
	return &OptionsHandler{uc: uc}
}

// Clients godoc
// @Summary      Opciones de clientes activos
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Filtro por nombre (sin acentos ni mayúsculas)"
// @Success      200  {array}  dto.OptionDTO
// @Router       /api/options/clientes [get]
func (h *OptionsHandler) Clients(c *fiber.Ctx) error {
	out, err := h.uc.Clients(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Opciones de productos activos
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Filtro por nombre"
// @Success      200  {array}  dto.OptionDTO
// @Router       /api/options/produtos [get]
func (h *OptionsHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stages godoc
// @Summary      Estaciones de producción
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OptionDTO
// @Router       /api/options/estagios [get]
func (h *OptionsHandler) Stages(c *fiber.Ctx) error {
	return c.JSON(h.uc.Stages())
}

// Units godoc
// @Summary      Unidades de estación
// @Tags         options
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OptionDTO
// @Router       /api/options/unidades [get]
func (h *OptionsHandler) Units(c *fiber.Ctx) error {
	return c.JSON(h.uc.Units())
}

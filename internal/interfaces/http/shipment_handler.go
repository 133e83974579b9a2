package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
)

// ShipmentHandler maneja las saídas (entregas) que descuentan del estoque.
type ShipmentHandler struct {
	uc      *inventory.ShipmentUseCase
	metrics *metrics.Metrics
}

// NewShipmentHandler construye el handler. m puede ser nil.
func NewShipmentHandler(uc *inventory.ShipmentUseCase, m *metrics.Metrics) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, metrics: m}
}

// List godoc
// @Summary      Listar saídas del día
// @Tags         saidas
// @Security     Bearer
// @Produce      json
// @Param        data        query  string  false  "YYYY-MM-DD (hoy si vacío)"
// @Param        cliente_id  query  string  false  "Cliente"
// @Success      200  {object}  dto.ShipmentListResponse
// @Router       /api/producao/saidas [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	date, err := dto.ParseDate(c.Query("data"), dto.Today())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), date, c.Query("cliente_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar saída
// @Description  Descuenta realizado del estoque del cliente en la misma transacción.
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShipmentRequest  true  "data, cliente_id, produto_id, meta, realizado"
// @Success      201  {object}  dto.ShipmentDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/producao/saidas [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.ShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.ShipmentOp("create")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar saída
// @Description  Aplica al estoque la diferencia entre el realizado nuevo y el anterior.
// @Tags         saidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rowId  path  string  true  "ID de la saída"
// @Param        body   body  dto.ShipmentRequest  true  "Datos completos de la saída"
// @Success      200  {object}  dto.ShipmentDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/producao/saidas/{rowId} [put]
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	var in dto.ShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rowID, err := pathID(c, "rowId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), rowID, in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.ShipmentOp("update")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar saída (admin)
// @Description  Devuelve el realizado al estoque.
// @Tags         saidas
// @Security     Bearer
// @Param        rowId  path  string  true  "ID de la saída"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producao/saidas/{rowId} [delete]
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	rowID, err := pathID(c, "rowId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), rowID); err != nil {
		return respondError(c, err)
	}
	h.metrics.ShipmentOp("delete")
	return c.SendStatus(fiber.StatusNoContent)
}

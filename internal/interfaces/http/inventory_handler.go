package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler maneja el estoque por cliente y producto.
type InventoryHandler struct {
	uc      *inventory.StockUseCase
	metrics *metrics.Metrics
}

// NewInventoryHandler construye el handler. m puede ser nil.
func NewInventoryHandler(uc *inventory.StockUseCase, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{uc: uc, metrics: m}
}

// List godoc
// @Summary      Listar estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        cliente_id  query  string  false  "Filtrar por cliente"
// @Success      200  {array}  dto.StockDTO
// @Router       /api/estoque [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("cliente_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Estoque de un par cliente/produto
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        clienteId  path  string  true  "Cliente"
// @Param        produtoId  path  string  true  "Produto"
// @Success      200  {object}  dto.StockDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{clienteId}/{produtoId} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	clientID, err := pathID(c, "clienteId")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := pathID(c, "produtoId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.UserContext(), clientID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste de estoque
// @Description  Suma un delta con signo. Un bucket negativo devuelve 409 INSUFFICIENT_STOCK
// @Description  salvo confirmar_negativo=true.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "cliente_id, produto_id, delta, confirmar_negativo"
// @Success      200  {object}  dto.StockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/estoque/ajuste [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Adjust(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.StockOp("ajuste")
	return c.JSON(out)
}

// SetInventory godoc
// @Summary      Inventário (contagem absoluta)
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryCountRequest  true  "cliente_id, produto_id, quantidade"
// @Success      200  {object}  dto.StockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/inventario [put]
func (h *InventoryHandler) SetInventory(c *fiber.Ctx) error {
	var in dto.InventoryCountRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetInventory(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.StockOp("inventario")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estoque de un par (admin)
// @Tags         estoque
// @Security     Bearer
// @Param        clienteId  path  string  true  "Cliente"
// @Param        produtoId  path  string  true  "Produto"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{clienteId}/{produtoId} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	clientID, err := pathID(c, "clienteId")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := pathID(c, "produtoId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), clientID, productID); err != nil {
		return respondError(c, err)
	}
	h.metrics.StockOp("delete")
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar estoque a Excel
// @Tags         estoque
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/estoque/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.xlsx"`)
	return c.Send(data)
}

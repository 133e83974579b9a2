package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	appproduction "github.com/jhoicas/Padaria-api/internal/application/production"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
)

// ProductionHandler maneja los paneles y registros de las estaciones de producción.
type ProductionHandler struct {
	uc      *appproduction.ProductionUseCase
	metrics *metrics.Metrics
}

// NewProductionHandler construye el handler. m puede ser nil.
func NewProductionHandler(uc *appproduction.ProductionUseCase, m *metrics.Metrics) *ProductionHandler {
	return &ProductionHandler{uc: uc, metrics: m}
}

// Panel godoc
// @Summary      Panel de una estación
// @Description  Filas del día con meta, produzido, unidade, status y progreso, más totales.
// @Tags         producao
// @Security     Bearer
// @Produce      json
// @Param        estagio  path   string  true   "massa | fermentacao | forno | resfriamento | embalagem"
// @Param        data     query  string  false  "YYYY-MM-DD (hoy si vacío)"
// @Success      200  {object}  dto.PanelResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/painel/{estagio} [get]
func (h *ProductionHandler) Panel(c *fiber.Ctx) error {
	stage, err := production.ParseStage(c.Params("estagio"))
	if err != nil {
		return respondError(c, err)
	}
	date, err := dto.ParseDate(c.Query("data"), dto.Today())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Panel(c.UserContext(), stage, date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar produção
// @Description  Acumula produzido en la fila (data, estagio, produto); la crea si no existe.
// @Tags         producao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        estagio  path  string  true  "Estación"
// @Param        body     body  dto.SubmitProductionRequest  true  "data, produto_id, produzido, meta, observacao"
// @Success      201  {object}  dto.ProductionRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/submit/{estagio} [post]
func (h *ProductionHandler) Submit(c *fiber.Ctx) error {
	stage, err := production.ParseStage(c.Params("estagio"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SubmitProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), GetUserID(c), stage, in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.ProductionSubmitted(string(stage))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PackOrder godoc
// @Summary      Embalar pedido
// @Description  En una transacción suma a la fila de embalagem del pedido, al estoque del
// @Description  cliente y avanza el estado del pedido (embalado cuando se completa).
// @Tags         producao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PackOrderRequest  true  "pedido_id, data, quantidade"
// @Success      201  {object}  dto.PackOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/submit/embalagem-pedido [post]
func (h *ProductionHandler) PackOrder(c *fiber.Ctx) error {
	var in dto.PackOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PackOrder(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.ProductionSubmitted(string(production.StagePackaging))
	h.metrics.StockOp("embalagem")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar fila de produção
// @Tags         producao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        estagio  path  string  true  "Estación"
// @Param        rowId    path  string  true  "ID de la fila"
// @Param        body     body  dto.UpdateProductionRequest  true  "meta, produzido"
// @Success      200  {object}  dto.ProductionRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producao/{estagio}/{rowId} [put]
func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	stage, err := production.ParseStage(c.Params("estagio"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	rowID, err := pathID(c, "rowId")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), stage, rowID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fila de produção (admin)
// @Tags         producao
// @Security     Bearer
// @Param        estagio  path  string  true  "Estación"
// @Param        rowId    path  string  true  "ID de la fila"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producao/{estagio}/{rowId} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	stage, err := production.ParseStage(c.Params("estagio"))
	if err != nil {
		return respondError(c, err)
	}
	rowID, err := pathID(c, "rowId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), stage, rowID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Plan godoc
// @Summary      Plano de produção del día
// @Description  Suma los pedidos con entrega en data y fija la meta de cada estación.
// @Tags         producao
// @Security     Bearer
// @Produce      json
// @Param        data  query  string  false  "YYYY-MM-DD (hoy si vacío)"
// @Success      200  {object}  dto.PlanResponse
// @Router       /api/producao/plano [post]
func (h *ProductionHandler) Plan(c *fiber.Ctx) error {
	date, err := dto.ParseDate(c.Query("data"), dto.Today())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Plan(c.UserContext(), GetUserID(c), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DailySummary godoc
// @Summary      Resumo diário
// @Tags         producao
// @Security     Bearer
// @Produce      json
// @Param        data  query  string  false  "YYYY-MM-DD (hoy si vacío)"
// @Success      200  {object}  dto.DailySummaryDTO
// @Router       /api/resumo-diario [get]
func (h *ProductionHandler) DailySummary(c *fiber.Ctx) error {
	date, err := dto.ParseDate(c.Query("data"), dto.Today())
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.DailySummary(c.UserContext(), date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

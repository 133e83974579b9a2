package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Padaria-api/internal/application/analytics"
)

// DashboardHandler maneja el dashboard de ventas.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSales godoc
// @Summary      Dashboard de ventas
// @Description  KPIs calculados sobre la planilla de ventas: período actual vs anterior,
// @Description  serie semanal, clientes nuevos/recurrentes, engajamento y top clientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        ref      query  string  false  "Fecha de referencia YYYY-MM-DD (hoy si vacío)"
// @Param        periodo  query  int     false  "Días del período (máx 366)"
// @Success      200  {object}  dto.SalesDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/vendas [get]
func (h *DashboardHandler) GetSales(c *fiber.Ctx) error {
	out, err := h.uc.GetSales(c.UserContext(), c.Query("ref"), c.QueryInt("periodo", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Padaria-api/internal/application/analytics"
	"github.com/jhoicas/Padaria-api/internal/application/auth"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/application/labels"
	appproduction "github.com/jhoicas/Padaria-api/internal/application/production"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain/entity"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	ClientUC     *usecase.ClientUseCase
	OptionsUC    *usecase.OptionsUseCase
	OrderUC      *usecase.OrderUseCase
	ProductionUC *appproduction.ProductionUseCase
	StockUC      *inventory.StockUseCase
	ShipmentUC   *inventory.ShipmentUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	LabelUC      *labels.LabelUseCase
	Metrics      *metrics.Metrics
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	options := protected.Group("/options")
	optionsHandler := NewOptionsHandler(deps.OptionsUC)
	options.Get("/clientes", optionsHandler.Clients)
	options.Get("/produtos", optionsHandler.Products)
	options.Get("/estagios", optionsHandler.Stages)
	options.Get("/unidades", optionsHandler.Units)

	orders := protected.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)

	// Saídas antes de /producao/:estagio/:rowId: Fiber resuelve en orden de registro.
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC, deps.Metrics)
	protected.Get("/producao/saidas", shipmentHandler.List)
	protected.Post("/producao/saidas", shipmentHandler.Create)
	protected.Put("/producao/saidas/:rowId", shipmentHandler.Update)
	protected.Delete("/producao/saidas/:rowId", adminOnly, shipmentHandler.Delete)

	productionHandler := NewProductionHandler(deps.ProductionUC, deps.Metrics)
	protected.Get("/painel/:estagio", productionHandler.Panel)
	protected.Post("/submit/embalagem-pedido", productionHandler.PackOrder)
	protected.Post("/submit/:estagio", productionHandler.Submit)
	protected.Post("/producao/plano", productionHandler.Plan)
	protected.Put("/producao/:estagio/:rowId", productionHandler.Update)
	protected.Delete("/producao/:estagio/:rowId", adminOnly, productionHandler.Delete)
	protected.Get("/resumo-diario", productionHandler.DailySummary)

	stock := protected.Group("/estoque")
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.Metrics)
	stock.Get("/", inventoryHandler.List)
	stock.Get("/export", inventoryHandler.Export)
	stock.Post("/ajuste", inventoryHandler.Adjust)
	stock.Put("/inventario", inventoryHandler.SetInventory)
	stock.Get("/:clienteId/:produtoId", inventoryHandler.Get)
	stock.Delete("/:clienteId/:produtoId", adminOnly, inventoryHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/vendas", dashboardHandler.GetSales)

	labelHandler := NewLabelHandler(deps.LabelUC)
	protected.Post("/etiquetas", labelHandler.Generate)
}

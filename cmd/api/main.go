package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Padaria-api/docs"
	appanalytics "github.com/jhoicas/Padaria-api/internal/application/analytics"
	"github.com/jhoicas/Padaria-api/internal/application/auth"
	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/inventory"
	"github.com/jhoicas/Padaria-api/internal/application/labels"
	appproduction "github.com/jhoicas/Padaria-api/internal/application/production"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Padaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/sheets"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Padaria-api/internal/interfaces/http"
	"github.com/jhoicas/Padaria-api/pkg/config"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

// @title        Padaria API
// @version      1.0
// @description  Produção, estoque por cliente, saídas e dashboard de vendas.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	dto.SetLocation(cfg.App.Location())
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Location().String()).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	m := metrics.New("padaria")

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Dashboard: planilla con cache; sin planilla configurada responde 502.
	var salesSource repository.SalesSource = sheets.Disabled{}
	if cfg.Sheets.Enabled() {
		reader, err := sheets.NewSalesReader(ctx, cfg.Sheets, m)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		salesSource = sheets.NewCachedSalesSource(reader, cfg.Sheets.CacheTTL, log)
	} else {
		log.Warn().Msg("SHEETS_SPREADSHEET_ID vacío: dashboard de vendas deshabilitado")
	}

	userUC := usecase.NewUserUseCase(userRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.AllowedEmails, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	clientUC := usecase.NewClientUseCase(clientRepo, log)
	optionsUC := usecase.NewOptionsUseCase(clientRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, clientRepo, productRepo, log)
	productionUC := appproduction.NewProductionUseCase(txRunner, productionRepo, productRepo, orderRepo, shipmentRepo, log)
	stockUC := inventory.NewStockUseCase(txRunner, stockRepo, clientRepo, productRepo, xlsx.NewStockExporter(), log)
	shipmentUC := inventory.NewShipmentUseCase(txRunner, shipmentRepo, clientRepo, productRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(salesSource, appanalytics.DashboardConfig{
		PeriodDays: cfg.Dashboard.PeriodDays,
		Weeks:      cfg.Dashboard.Weeks,
		ActiveDays: cfg.Dashboard.ActiveDays,
		ChurnDays:  cfg.Dashboard.ChurnDays,
		Location:   cfg.Dashboard.Location(),
	})
	labelUC := labels.NewLabelUseCase(productRepo, infrapdf.NewLabelGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.AccessLog(log, m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Padaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProductUC:    productUC,
		ClientUC:     clientUC,
		OptionsUC:    optionsUC,
		OrderUC:      orderUC,
		ProductionUC: productionUC,
		StockUC:      stockUC,
		ShipmentUC:   shipmentUC,
		DashboardUC:  dashboardUC,
		LabelUC:      labelUC,
		Metrics:      m,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

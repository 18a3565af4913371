package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gametechlabs/stock-api/internal/application/auth"
	"github.com/gametechlabs/stock-api/internal/application/inventory"
	"github.com/gametechlabs/stock-api/internal/application/reports"
	"github.com/gametechlabs/stock-api/internal/application/usecase"
	"github.com/gametechlabs/stock-api/internal/infrastructure/memory"
	infrapdf "github.com/gametechlabs/stock-api/internal/infrastructure/pdf"
	httpRouter "github.com/gametechlabs/stock-api/internal/interfaces/http"
	"github.com/gametechlabs/stock-api/pkg/config"
	"github.com/gametechlabs/stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := memory.NewStore()
	if cfg.Seed.DemoData {
		if err := memory.Seed(store); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("catálogo de demostración cargado (P001..P006, 3 usuarios)")
	}

	productRepo := memory.NewProductRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	userRepo := memory.NewUserRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	txRunner := memory.NewTxRunner(store)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, userRepo)
	historyUC := inventory.NewHistoryUseCase(movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, warehouseRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	reportUC := reports.NewStockReportUseCase(productRepo, movementRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GameTech Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		WarehouseUC:      warehouseUC,
		RegisterMovement: registerMovementUC,
		History:          historyUC,
		StockReport:      reportUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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

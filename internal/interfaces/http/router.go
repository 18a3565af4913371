package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gametechlabs/stock-api/internal/application/auth"
	"github.com/gametechlabs/stock-api/internal/application/inventory"
	"github.com/gametechlabs/stock-api/internal/application/reports"
	"github.com/gametechlabs/stock-api/internal/application/usecase"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	History          *inventory.HistoryUseCase
	StockReport      *reports.StockReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; el alta de catálogo es de admin y encargado)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:code", productHandler.GetByCode)

	// Warehouses (protegido; el alta de depósitos es solo de admin)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Inventory movements + historial + reporte (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.History, deps.StockReport)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/history", inventoryHandler.History)
	invGroup.Get("/report", inventoryHandler.Report)
}

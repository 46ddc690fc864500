package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/analytics"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/auth"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/inventory"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/application/usecase"
	"github.com/konceptsolutions/crystal-trading-frontend-sub006/internal/infrastructure/upstream"
)

// proxiedResources colecciones servidas por el backend upstream.
var proxiedResources = []string{"customers", "accounts", "vouchers", "sales-invoices", "models"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	Verifier    *auth.TokenVerifier
	LoginUC     *auth.LoginUseCase
	BrandUC     *usecase.BrandUseCase
	CategoryUC  *usecase.CategoryUseCase
	PartUC      *usecase.PartUseCase
	SupplierUC  *usecase.SupplierUseCase
	StoreUC     *usecase.StoreUseCase
	KitUC       *usecase.KitUseCase
	AdjustUC    *inventory.AdjustmentUseCase
	AdjustPDFUC *inventory.AdjustmentPDFUseCase
	TransferUC  *inventory.TransferUseCase
	StatsUC     *analytics.StatsUseCase
	ClosingUC   *analytics.DailyClosingUseCase
	Gateway     upstream.Gateway
	Errors      *ErrorWriter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.LoginUC, deps.Errors)
	api.Post("/auth/login", authHandler.Login)

	// Todo lo demás exige Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.Verifier))
	protected.Get("/auth/me", authHandler.Me)

	brands := protected.Group("/brands")
	brandHandler := NewBrandHandler(deps.BrandUC, deps.Errors)
	brands.Get("/", brandHandler.List)
	brands.Post("/", brandHandler.Create)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Put("/:id", brandHandler.Update)
	brands.Delete("/:id", brandHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Errors)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC, deps.Errors)
	parts.Get("/", partHandler.List)
	parts.Post("/", partHandler.Create)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Errors)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Tiendas y racks
	storeHandler := NewStoreHandler(deps.StoreUC, deps.Errors)
	protected.Get("/stores", storeHandler.ListStores)
	protected.Post("/stores", storeHandler.CreateStore)
	racks := protected.Group("/racks")
	racks.Get("/", storeHandler.ListRacks)
	racks.Post("/", storeHandler.CreateRack)
	racks.Get("/:id", storeHandler.GetRack)
	racks.Put("/:id", storeHandler.UpdateRack)
	racks.Delete("/:id", storeHandler.DeleteRack)

	kits := protected.Group("/kits")
	kitHandler := NewKitHandler(deps.KitUC, deps.Errors)
	kits.Get("/", kitHandler.List)
	kits.Post("/", kitHandler.Create)
	kits.Get("/:id", kitHandler.GetByID)
	kits.Delete("/:id", kitHandler.Delete)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.AdjustUC, deps.AdjustPDFUC, deps.TransferUC, deps.Errors)
	adjustments := protected.Group("/inventory-adjustments")
	adjustments.Get("/", inventoryHandler.ListAdjustments)
	adjustments.Post("/", inventoryHandler.CreateAdjustment)
	adjustments.Get("/:id", inventoryHandler.GetAdjustment)
	adjustments.Get("/:id/pdf", inventoryHandler.AdjustmentPDF)
	protected.Get("/stock-transfers", inventoryHandler.ListTransfers)
	protected.Post("/stock-transfers", inventoryHandler.CreateTransfer)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.StatsUC, deps.ClosingUC, deps.Errors)
	protected.Get("/stats", analyticsHandler.GetStats)
	protected.Get("/reports/daily-closing", analyticsHandler.GetDailyClosing)

	// Proxy al backend upstream
	for _, resource := range proxiedResources {
		h := ProxyHandler(deps.Gateway, "/"+resource, deps.Errors)
		protected.All("/"+resource, h)
		protected.All("/"+resource+"/*", h)
	}
}

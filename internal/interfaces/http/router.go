package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/repuestos-erp/internal/application/assistant"
	"github.com/tu-usuario/repuestos-erp/internal/application/auth"
	"github.com/tu-usuario/repuestos-erp/internal/application/catalog"
	"github.com/tu-usuario/repuestos-erp/internal/application/company"
	"github.com/tu-usuario/repuestos-erp/internal/application/inventory"
	"github.com/tu-usuario/repuestos-erp/internal/application/purchasing"
	"github.com/tu-usuario/repuestos-erp/internal/application/reports"
	"github.com/tu-usuario/repuestos-erp/internal/application/vouchers"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *company.CompanyUseCase
	PartUC      *catalog.PartUseCase
	TaxonomyUC  *catalog.TaxonomyUseCase
	MovementUC  *inventory.RegisterMovementUseCase
	BalanceUC   *inventory.BalanceUseCase
	AnalysisUC  *inventory.AnalysisUseCase
	SupplierUC  *purchasing.SupplierUseCase
	OrderUC     *purchasing.PurchaseOrderUseCase
	VoucherUC   *vouchers.VoucherUseCase
	ReportUC    *reports.ReportUseCase
	AssistantUC *assistant.AssistantUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login/register públicos; /me requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quien mueve stock: admin o bodeguero. El vendedor solo consulta.
	stockWriter := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Company (protegido; solo admin actualiza)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", adminOnly, companyHandler.Update)

	// Parts (protegido)
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", stockWriter, partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", stockWriter, partHandler.Update)
	parts.Delete("/:id", stockWriter, partHandler.Deactivate)

	// Categorías, marcas y bodegas (protegido)
	taxonomyHandler := NewTaxonomyHandler(deps.TaxonomyUC)
	categories := protected.Group("/categories")
	categories.Post("/", stockWriter, taxonomyHandler.CreateCategory)
	categories.Get("/", taxonomyHandler.ListCategories)
	categories.Put("/:id", stockWriter, taxonomyHandler.RenameCategory)
	categories.Delete("/:id", stockWriter, taxonomyHandler.DeleteCategory)

	brands := protected.Group("/brands")
	brands.Post("/", stockWriter, taxonomyHandler.CreateBrand)
	brands.Get("/", taxonomyHandler.ListBrands)
	brands.Delete("/:id", stockWriter, taxonomyHandler.DeleteBrand)

	stores := protected.Group("/stores")
	stores.Post("/", stockWriter, taxonomyHandler.CreateStore)
	stores.Get("/", taxonomyHandler.ListStores)
	stores.Put("/:id", stockWriter, taxonomyHandler.UpdateStore)
	stores.Delete("/:id", stockWriter, taxonomyHandler.DeleteStore)

	// Inventory: movimientos, balances y análisis de rotación (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.BalanceUC, deps.AnalysisUC)
	invGroup.Post("/movements", stockWriter, inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/transfers", stockWriter, inventoryHandler.Transfer)
	invGroup.Get("/balances", inventoryHandler.Balances)
	invGroup.Get("/balance/:partId", inventoryHandler.PartBalance)
	invGroup.Get("/stock-analysis", inventoryHandler.StockAnalysis)

	// Purchasing: proveedores y órdenes de compra (protegido)
	purchasingGroup := protected.Group("/purchasing")
	purchasingHandler := NewPurchasingHandler(deps.SupplierUC, deps.OrderUC)
	suppliers := purchasingGroup.Group("/suppliers")
	suppliers.Post("/", stockWriter, purchasingHandler.CreateSupplier)
	suppliers.Get("/", purchasingHandler.ListSuppliers)
	suppliers.Get("/:id", purchasingHandler.GetSupplier)
	suppliers.Put("/:id", stockWriter, purchasingHandler.UpdateSupplier)
	suppliers.Delete("/:id", stockWriter, purchasingHandler.DeleteSupplier)

	orders := purchasingGroup.Group("/orders")
	orders.Post("/", stockWriter, purchasingHandler.CreateOrder)
	orders.Get("/", purchasingHandler.ListOrders)
	orders.Get("/:id", purchasingHandler.GetOrder)
	orders.Put("/:id", stockWriter, purchasingHandler.UpdateOrder)
	orders.Post("/:id/place", stockWriter, purchasingHandler.PlaceOrder)
	orders.Post("/:id/receive", stockWriter, purchasingHandler.ReceiveOrder)
	orders.Post("/:id/cancel", stockWriter, purchasingHandler.CancelOrder)
	orders.Delete("/:id", stockWriter, purchasingHandler.DeleteOrder)

	// Vouchers: recibos y pagos de caja (protegido)
	vouchersGroup := protected.Group("/vouchers")
	voucherHandler := NewVoucherHandler(deps.VoucherUC)
	vouchersGroup.Post("/", voucherHandler.Create)
	vouchersGroup.Get("/", voucherHandler.List)
	vouchersGroup.Get("/:id", voucherHandler.GetByID)
	vouchersGroup.Get("/:id/pdf", voucherHandler.PDF)
	vouchersGroup.Delete("/:id", adminOnly, voucherHandler.Delete)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/stock-movement", reportHandler.StockMovements)

	// Asistente IA (protegido)
	assistantGroup := protected.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistantGroup.Post("/chat", assistantHandler.Chat)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/inventory"
	"github.com/tu-usuario/tienda-api/internal/application/orders"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *usecase.DashboardUseCase
	MovementUC  *inventory.MovementUseCase
	OrderUC     *orders.OrderUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo público: listar y consultar productos y categorías
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:id", categoryHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (mutaciones de staff)
	products := protected.Group("/products")
	products.Post("/", staffOnly, productHandler.Create)
	products.Put("/:id", staffOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventario por producto (staff)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	products.Get("/:id/movements", staffOnly, productHandler.GetMovements)
	products.Post("/:id/movements", staffOnly, inventoryHandler.RegisterMovement)
	products.Put("/:id/location", staffOnly, inventoryHandler.Relocate)

	// Orders (cualquier usuario autenticado crea y consulta; acciones de staff van con guard)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/buyer/:id", adminOnly, orderHandler.ListByBuyer)
	ordersGroup.Get("/creator/:id", adminOnly, orderHandler.ListByCreator)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", staffOnly, orderHandler.UpdateStatus)
	ordersGroup.Put("/:id/receipt/status", staffOnly, orderHandler.UpdateReceiptStatus)
	ordersGroup.Put("/:id/receipt", orderHandler.AttachReceipt)
	ordersGroup.Put("/:id", staffOnly, orderHandler.UpdateShipping)
	ordersGroup.Delete("/:id", adminOnly, orderHandler.Delete)

	// Categories (mutaciones de admin)
	categories := protected.Group("/categories")
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Suppliers (staff)
	suppliers := protected.Group("/suppliers", staffOnly)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Users + dashboard (admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", adminOnly, dashboardHandler.Counts)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosco-api/internal/application/auth"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	SaleUC     *usecase.SaleUseCase
	SupplierUC *usecase.SupplierUseCase
	CashUC     *usecase.CashUseCase
	SettingsUC *usecase.SettingsUseCase
	TrialUC    *usecase.TrialUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.SaleUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/sales", customerHandler.Sales)

	// Ventas y pagos de fiados (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Post("/:id/payments", saleHandler.RegisterPayment)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Caja diaria (protegido)
	cash := protected.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Post("/open", cashHandler.Open)
	cash.Get("/current", cashHandler.Current)
	cash.Post("/movements", cashHandler.AddMovement)
	cash.Post("/close", cashHandler.Close)

	// Preferencias (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/theme", settingsHandler.GetTheme)
	settings.Put("/theme", settingsHandler.SetTheme)

	// Período de prueba (protegido)
	trialHandler := NewTrialHandler(deps.TrialUC)
	protected.Get("/trial", trialHandler.Status)

	// Escáner de códigos de barras (protegido)
	scannerHandler := NewScannerHandler(deps.ProductUC)
	protected.Post("/scanner/events", scannerHandler.Decode)
}

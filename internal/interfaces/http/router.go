package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/commerce-api/internal/application/auth"
	apporder "github.com/jhoicas/commerce-api/internal/application/order"
	apppayment "github.com/jhoicas/commerce-api/internal/application/payment"
	"github.com/jhoicas/commerce-api/internal/application/usecase"
	"github.com/jhoicas/commerce-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC   *apporder.UseCase
	PaymentUC *apppayment.UseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/signout", authHandler.SignOut)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/process", paymentHandler.Process)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)

	// Products (protegido; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Users (protegido; listado solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/:username", userHandler.GetByUsername)
}

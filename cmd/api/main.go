package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/commerce-api/internal/application/auth"
	apporder "github.com/jhoicas/commerce-api/internal/application/order"
	apppayment "github.com/jhoicas/commerce-api/internal/application/payment"
	"github.com/jhoicas/commerce-api/internal/application/usecase"
	"github.com/jhoicas/commerce-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/commerce-api/internal/interfaces/http"
	"github.com/jhoicas/commerce-api/pkg/config"
	"github.com/jhoicas/commerce-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	tokenRepo := postgres.NewRefreshTokenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	orderUC := apporder.NewUseCase(txRunner)
	paymentUC := apppayment.NewUseCase(orderUC, productRepo, paymentRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		AccessExpMinutes:  cfg.JWT.AccessExpiration,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		Issuer:            cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:   orderUC,
		PaymentUC: paymentUC,
		ProductUC: productUC,
		UserUC:    userUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/jhoicas/kiosco-api/internal/application/auth"
	"github.com/jhoicas/kiosco-api/internal/application/usecase"
	"github.com/jhoicas/kiosco-api/internal/events"
	"github.com/jhoicas/kiosco-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/kiosco-api/internal/interfaces/http"
	"github.com/jhoicas/kiosco-api/pkg/config"
	"github.com/jhoicas/kiosco-api/pkg/logger"
)

// swaggerDocPath es relativo al directorio de trabajo del binario.
const swaggerDocPath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén local")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar generador de IDs")
	}

	bus := events.New()

	productRepo := store.NewProductRepository(db)
	customerRepo := store.NewCustomerRepository(db)
	saleRepo := store.NewSaleRepository(db)
	supplierRepo := store.NewSupplierRepository(db)
	cashRepo := store.NewCashRepository(db)
	settingRepo := store.NewSettingRepository(db)
	userRepo := store.NewUserRepository(db)
	trialRepo := store.NewTrialRepository(db)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, saleRepo)
	cashUC := usecase.NewCashUseCase(cashRepo, node)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo, customerRepo, cashUC, node)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingRepo)
	trialUC := usecase.NewTrialUseCase(trialRepo, userRepo, settingsUC, log, cfg.Trial.Days, cfg.Trial.DemoUsername)
	authUC := auth.NewAuthUseCase(userRepo, bus, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if err := trialUC.Subscribe(bus); err != nil {
		log.Fatal().Err(err).Msg("suscribir trial al bus de sesión")
	}

	// Recomputo periódico del trial del demo.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@hourly", trialUC.Recompute); err != nil {
		log.Fatal().Err(err).Msg("programar recomputo del trial")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra
	// en pánico si el documento no existe, así que se verifica antes.
	if _, err := os.Stat(swaggerDocPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerDocPath,
			Path:     "docs",
			Title:    "Kiosco API",
		}))
	} else {
		log.Warn().Str("path", swaggerDocPath).Msg("documento swagger ausente, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CustomerUC: customerUC,
		SaleUC:     saleUC,
		SupplierUC: supplierUC,
		CashUC:     cashUC,
		SettingsUC: settingsUC,
		TrialUC:    trialUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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

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

	"github.com/jhoicas/chopp-api/internal/application/auth"
	"github.com/jhoicas/chopp-api/internal/application/chatbot"
	"github.com/jhoicas/chopp-api/internal/application/inventory"
	"github.com/jhoicas/chopp-api/internal/application/reporting"
	"github.com/jhoicas/chopp-api/internal/application/sales"
	"github.com/jhoicas/chopp-api/internal/application/usecase"
	"github.com/jhoicas/chopp-api/internal/domain/repository"
	"github.com/jhoicas/chopp-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/chopp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/chopp-api/internal/infrastructure/postgres"
	"github.com/jhoicas/chopp-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/chopp-api/internal/infrastructure/twilio"
	httpRouter "github.com/jhoicas/chopp-api/internal/interfaces/http"
	"github.com/jhoicas/chopp-api/pkg/config"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// stores repositorios y ejecutor transaccional del driver elegido.
type stores struct {
	products  repository.ProductRepository
	movements repository.InventoryMovementRepository
	sales     repository.SaleRepository
	tx        inventory.TxRunner
	close     func()
}

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
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer st.close()

	productUC := usecase.NewProductUseCase(st.products)
	movementUC := inventory.NewMovementUseCase(st.products, st.movements, log)
	recordSaleUC := sales.NewRecordSaleUseCase(st.tx, log)
	reportUC := reporting.NewReportUseCase(st.sales, infrapdf.NewMarotoReportGenerator(cfg.App.BusinessName))
	interpreter := chatbot.NewInterpreter(reportUC, log)
	authUC := auth.NewAuthUseCase(
		auth.Credentials{User: cfg.Form.User, Password: cfg.Form.Password, PasswordHash: cfg.Form.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)
	if cfg.Form.User == "" {
		log.Warn().Msg("FORM_USER vacío: las rutas protegidas rechazarán todo acceso")
	}
	if cfg.Twilio.AuthToken == "" {
		log.Warn().Msg("TWILIO_AUTH_TOKEN vacío: webhook de WhatsApp deshabilitado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chopp API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		MovementUC:     movementUC,
		RecordSale:     recordSaleUC,
		ReportUC:       reportUC,
		Interpreter:    interpreter,
		Signature:      twilio.NewSignatureValidator(cfg.Twilio.AuthToken),
		BusinessName:   cfg.App.BusinessName,
		WebhookEnabled: cfg.Twilio.AuthToken != "",
		Log:            log,
	})

	// Reporte mensual programado por WhatsApp
	var cron *scheduler.Scheduler
	if cfg.Report.Enabled() {
		client := twilio.NewClient(twilio.Config{
			BaseURL:    cfg.Twilio.BaseURL,
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			From:       cfg.Twilio.From,
		})
		cron = scheduler.New(cfg.Report.Cron, cfg.Report.Recipient, interpreter, client, log)
		if err := cron.Start(); err != nil {
			log.Fatal().Err(err).Msg("programar reporte mensual")
		}
	}

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

	if cron != nil {
		cron.Stop()
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores abre PostgreSQL (con migraciones opcionales) o el almacén en memoria.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.DB.Driver == config.StoreDriverMemory {
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &stores{products: s.Products(), movements: s.Movements(), sales: s.Sales(), tx: s, close: func() {}}, nil
	}

	if cfg.DB.AutoMigrate {
		m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
		if err != nil {
			return nil, err
		}
		err = m.Up()
		_ = m.Close()
		if err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &stores{
		products:  postgres.NewProductRepository(pool),
		movements: postgres.NewInventoryMovementRepository(pool),
		sales:     postgres.NewSaleRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

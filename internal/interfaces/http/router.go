package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chopp-api/internal/application/auth"
	"github.com/jhoicas/chopp-api/internal/application/inventory"
	"github.com/jhoicas/chopp-api/internal/application/reporting"
	"github.com/jhoicas/chopp-api/internal/application/sales"
	"github.com/jhoicas/chopp-api/internal/application/usecase"
	"github.com/jhoicas/chopp-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	MovementUC   *inventory.MovementUseCase
	RecordSale   *sales.RecordSaleUseCase
	ReportUC     *reporting.ReportUseCase
	Interpreter  ChatInterpreter
	Signature    SignatureValidator
	BusinessName string
	// WebhookEnabled false → /whatsapp/webhook responde 503.
	WebhookEnabled bool
	Log            *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	guard := AuthMiddleware(deps.AuthUC, deps.BusinessName)

	// Formulario web
	app.Get("/", guard, NewFormHandler(deps.ProductUC, deps.BusinessName).Index)

	// WhatsApp (firma de Twilio, sin credenciales)
	webhook := NewWebhookHandler(deps.Signature, deps.Interpreter, deps.Log)
	app.Post("/whatsapp/webhook", RequireFeature("whatsapp", deps.WebhookEnabled), webhook.Receive)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Basic o Bearer)
	protected := api.Group("/", guard)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	invGroup.Post("/entries", inventoryHandler.RegisterEntry)
	invGroup.Post("/manual-outs", inventoryHandler.RegisterManualOut)
	invGroup.Get("/stock", inventoryHandler.Stock)

	protected.Post("/sales", NewSaleHandler(deps.RecordSale).Record)

	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Metrics)
	reports.Get("/weekdays", reportHandler.Weekdays)
	reports.Get("/monthly.pdf", reportHandler.MonthlyPDF)
}

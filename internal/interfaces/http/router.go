package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	AuditUC     *audit.AuditUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	ImportUC    *importer.ImportUseCase
	Metrics     nethttp.Handler // nil = sin /metrics
	Log         zerolog.Logger
	// Detalles incluye el error interno en las respuestas 5xx (sólo fuera de producción).
	Detalles bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New())
	app.Use(RequestLogger(deps.Log))

	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	}
	app.Get("/", health)
	app.Get("/health", health)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Pruebas de auditoría
	auditar := api.Group("/auditar")
	auditHandler := NewAuditHandler(deps.AuditUC, deps.Detalles)
	auditar.Post("/v1/papel", auditHandler.Papel)
	auditar.Post("/v2/anotacion", auditHandler.Anotacion)
	auditar.Post("/v3/validaciones", auditHandler.Validaciones)
	auditar.Post("/v4/tramitacion", auditHandler.Tramitacion)
	auditar.Post("/resumen", auditHandler.Resumen)

	// Facturas
	facturas := api.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ImportUC, deps.Detalles)
	facturas.Get("/", invoiceHandler.List)
	facturas.Post("/importar", invoiceHandler.Import)
}

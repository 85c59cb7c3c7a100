package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Auditoria-RCF/docs"
	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/application/usecase"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/cache"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/metrics"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Auditoria-RCF/internal/interfaces/http"
	"github.com/jhoicas/Auditoria-RCF/pkg/config"
	"github.com/jhoicas/Auditoria-RCF/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de facturas")
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de informes: opcional, sólo si REDIS_ADDR está definido.
	var reportCache audit.ReportCache
	if cfg.Redis.Enabled() {
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, informes sin caché")
		} else {
			defer client.Close()
			reportCache = cache.NewReportCache(client, cfg.Redis.Prefix)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	auditUC := audit.NewAuditUseCase(invoiceRepo, reportCache, m, log.Zerolog(), audit.Config{
		FetchTimeout: cfg.Audit.FetchTimeout,
		CacheTTL:     cfg.Audit.CacheTTL,
	})
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	importUC := importer.NewImportUseCase(txRunner, ingest.Lectores(), reportCache, log.Zerolog())

	detalles := !cfg.App.Production()
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ErrorHandler: httpRouter.ErrorHandler(detalles),
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if file, err := swaggerFile(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: file,
			Path:     "docs",
			Title:    docs.SwaggerInfo.Title,
		}))
	} else {
		log.Warn().Err(err).Msg("swagger no disponible, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		AuditUC:     auditUC,
		InvoiceUC:   invoiceUC,
		ImportUC:    importUC,
		Metrics:     m.Handler(),
		Log:         log.Component("http"),
		Detalles:    detalles,
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

// swaggerFile devuelve la ruta del JSON de swagger. Si el fichero configurado no existe
// se vuelca la especificación registrada en swag a un temporal.
func swaggerFile(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return "", err
	}
	tmp := filepath.Join(os.TempDir(), "auditoria-rcf-swagger.json")
	if err := os.WriteFile(tmp, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return tmp, nil
}

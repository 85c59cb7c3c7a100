package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/memory"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/postgres"
	"github.com/jhoicas/Auditoria-RCF/pkg/config"
	"github.com/jhoicas/Auditoria-RCF/pkg/logger"
)

var version = "dev"

// opciones flags persistentes compartidos por todos los subcomandos.
type opciones struct {
	fixture  string
	charset  string
	logLevel string
}

// backend almacén de facturas sobre el que trabaja un subcomando.
type backend struct {
	cfg    *config.Config
	repo   repository.InvoiceRepository
	tx     importer.TxRunner
	cerrar func()
}

func newRootCmd() *cobra.Command {
	opts := &opciones{}
	root := &cobra.Command{
		Use:   "auditctl",
		Short: "Auditoría del Registro Contable de Facturas",
		Long: `auditctl ejecuta las pruebas de auditoría V.1 a V.4 sobre las facturas del RCF
y escribe el informe en JSON por la salida estándar.

Sin --fixture se usa la base de datos configurada (DATABASE_URL o DB_*).
Con --fixture las facturas se cargan en memoria desde un fichero CSV, JSON o Facturae.`,
		Example: `  auditctl papel --desde 2024-01-01 --hasta 2024-03-31 --fixture facturas.csv
  auditctl validaciones
  auditctl importar --archivo lote.xml --charset iso-8859-1
  auditctl dias-habiles --desde 2024-01-01 --hasta 2024-01-31`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.fixture, "fixture", "", "fichero de facturas (csv, json o xml) cargado en memoria en lugar de la base de datos")
	root.PersistentFlags().StringVar(&opts.charset, "charset", "", "codificación de los ficheros leídos (utf-8, iso-8859-1, windows-1252)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "nivel de log (trace, debug, info, warn, error)")

	root.AddCommand(
		newAuditarCmds(opts)...,
	)
	root.AddCommand(
		newImportarCmd(opts),
		newDiasHabilesCmd(),
	)
	return root
}

// nuevoLogger escribe en stderr para no mezclar logs con el JSON de salida.
func nuevoLogger(cmd *cobra.Command, opts *opciones) zerolog.Logger {
	l := logger.New(logger.Config{
		Env:     "development",
		Level:   opts.logLevel,
		Service: "auditctl",
		Out:     cmd.ErrOrStderr(),
	})
	return l.Component("auditctl")
}

func abrirBackend(ctx context.Context, opts *opciones, log zerolog.Logger) (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.fixture != "" {
		b, err := cargarFixture(ctx, opts, log)
		if err != nil {
			return nil, err
		}
		b.cfg = cfg
		return b, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	return &backend{
		cfg:    cfg,
		repo:   postgres.NewInvoiceRepository(pool),
		tx:     postgres.NewTxRunner(pool),
		cerrar: pool.Close,
	}, nil
}

func cargarFixture(ctx context.Context, opts *opciones, log zerolog.Logger) (*backend, error) {
	f, err := os.Open(opts.fixture)
	if err != nil {
		return nil, fmt.Errorf("abrir fixture: %w", err)
	}
	defer f.Close()

	mem := memory.NewInvoiceRepository()
	uc := importer.NewImportUseCase(mem, ingest.Lectores(), nil, log)
	res, err := uc.Importar(ctx, f, importer.FormatoPorExtension(opts.fixture), importer.Opciones{Charset: opts.charset})
	if err != nil {
		return nil, fmt.Errorf("cargar fixture: %w", err)
	}
	for _, r := range res.Rechazadas {
		log.Warn().Int("fila", r.Fila).Str("error", r.Error).Msg("fila de fixture descartada")
	}
	return &backend{repo: mem, tx: mem, cerrar: func() {}}, nil
}

func imprimirJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

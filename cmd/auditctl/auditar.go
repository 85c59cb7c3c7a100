package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

type ejecutorPrueba func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error)

// newAuditarCmds crea un subcomando por prueba.
func newAuditarCmds(opts *opciones) []*cobra.Command {
	pruebas := []struct {
		use, short string
		run        ejecutorPrueba
	}{
		{"papel", "V.1 Facturas en papel registradas fuera de plazo, sin fecha o duplicadas",
			func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error) {
				return uc.Papel(ctx, p)
			}},
		{"anotacion", "V.2 Tiempo entre presentación y anotación en el RCF",
			func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error) {
				return uc.Anotacion(ctx, p)
			}},
		{"validaciones", "V.3 Validaciones de contenido de facturas electrónicas",
			func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error) {
				return uc.Validaciones(ctx, p)
			}},
		{"tramitacion", "V.4 Estado de tramitación de facturas electrónicas",
			func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error) {
				return uc.Tramitacion(ctx, p)
			}},
		{"resumen", "Ejecuta las cuatro pruebas y resume los hallazgos",
			func(ctx context.Context, uc *audit.AuditUseCase, p fechas.RangoParams) (any, error) {
				return uc.Resumen(ctx, p)
			}},
	}

	cmds := make([]*cobra.Command, 0, len(pruebas))
	for _, pr := range pruebas {
		cmds = append(cmds, newPruebaCmd(opts, pr.use, pr.short, pr.run))
	}
	return cmds
}

func newPruebaCmd(opts *opciones, use, short string, run ejecutorPrueba) *cobra.Command {
	var desde, hasta string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := nuevoLogger(cmd, opts)

			b, err := abrirBackend(ctx, opts, log)
			if err != nil {
				return err
			}
			defer b.cerrar()

			uc := audit.NewAuditUseCase(b.repo, nil, nil, log, audit.Config{FetchTimeout: b.cfg.Audit.FetchTimeout})

			informe, err := run(ctx, uc, fechas.NewRangoParams(desde, hasta))
			if err != nil {
				return err
			}
			return imprimirJSON(cmd.OutOrStdout(), informe)
		},
	}
	cmd.Flags().StringVar(&desde, "desde", "", "fecha de inicio YYYY-MM-DD")
	cmd.Flags().StringVar(&hasta, "hasta", "", "fecha de fin YYYY-MM-DD (inclusiva)")
	return cmd
}

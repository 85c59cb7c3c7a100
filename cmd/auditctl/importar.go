package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
)

func newImportarCmd(opts *opciones) *cobra.Command {
	var archivo, formato string
	cmd := &cobra.Command{
		Use:   "importar",
		Short: "Importa un fichero de facturas (CSV, Facturae o JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if archivo == "" {
				return fmt.Errorf("falta --archivo")
			}
			if formato == "" {
				formato = importer.FormatoPorExtension(archivo)
			}
			ctx := cmd.Context()
			log := nuevoLogger(cmd, opts)

			f, err := os.Open(archivo)
			if err != nil {
				return fmt.Errorf("abrir archivo: %w", err)
			}
			defer f.Close()

			b, err := abrirBackend(ctx, opts, log)
			if err != nil {
				return err
			}
			defer b.cerrar()

			uc := importer.NewImportUseCase(b.tx, ingest.Lectores(), nil, log)
			res, err := uc.Importar(ctx, f, formato, importer.Opciones{Charset: opts.charset})
			if err != nil {
				return err
			}
			return imprimirJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&archivo, "archivo", "", "fichero a importar")
	cmd.Flags().StringVar(&formato, "formato", "", "csv, facturae o json (por defecto según la extensión)")
	return cmd
}

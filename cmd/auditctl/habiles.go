package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

func newDiasHabilesCmd() *cobra.Command {
	var desde, hasta string
	cmd := &cobra.Command{
		Use:   "dias-habiles",
		Short: "Cuenta los días de lunes a viernes entre dos fechas (ambas incluidas)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if desde == "" || hasta == "" {
				return fmt.Errorf("--desde y --hasta son obligatorios")
			}
			inicio, err := fechas.ParseFecha(desde)
			if err != nil {
				return err
			}
			fin, err := fechas.ParseFecha(hasta)
			if err != nil {
				return err
			}
			n, _ := fechas.DiasHabiles(&inicio, &fin)
			return imprimirJSON(cmd.OutOrStdout(), map[string]any{
				"fecha_inicio": desde,
				"fecha_fin":    hasta,
				"dias_habiles": n,
			})
		},
	}
	cmd.Flags().StringVar(&desde, "desde", "", "fecha de inicio YYYY-MM-DD")
	cmd.Flags().StringVar(&hasta, "hasta", "", "fecha de fin YYYY-MM-DD")
	return cmd
}

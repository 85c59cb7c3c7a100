package audit

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// Resumen ejecuta las cuatro pruebas en paralelo sobre el mismo período y devuelve
// las cifras principales. El rango es obligatorio porque V.1 y V.2 lo exigen.
func (uc *AuditUseCase) Resumen(ctx context.Context, params fechas.RangoParams) (*dto.ResumenAuditoriaDTO, error) {
	rango, err := fechas.ValidarRango(params, true)
	if err != nil {
		return nil, err
	}

	var (
		papel       *dto.InformePapelDTO
		anotacion   *dto.InformeAnotacionDTO
		contenido   *dto.InformeContenidoDTO
		tramitacion *dto.InformeTramitacionDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		papel, err = uc.Papel(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		anotacion, err = uc.Anotacion(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		contenido, err = uc.Validaciones(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		tramitacion, err = uc.Tramitacion(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ResumenAuditoriaDTO{
		PeriodoAnalizado:         toPeriodo(rango),
		FacturasPapel:            papel.TotalAnalizadas,
		FacturasElectronicas:     tramitacion.TotalAnalizadas,
		PapelFueraDePlazo:        len(papel.FueraDePlazo),
		PapelDuplicadas:          len(papel.DuplicadasPotenciales),
		TiempoMedioAnotacion:     anotacion.Tiempos.Promedio,
		FacturasConErrores:       len(contenido.ConErrores),
		FacturasEstadoIncorrecto: len(tramitacion.EstadoIncorrecto),
		DistribucionEstados:      tramitacion.DistribucionEstados,
	}, nil
}

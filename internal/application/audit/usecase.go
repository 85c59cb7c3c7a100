// Package audit orquesta las cuatro pruebas de auditoría del RCF: valida el rango,
// recupera las facturas, ejecuta la prueba pura y publica el informe.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	domaudit "github.com/jhoicas/Auditoria-RCF/internal/domain/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// Nombres de prueba, usados en logs, métricas y claves de caché.
const (
	PruebaPapel        = "papel"
	PruebaAnotacion    = "anotacion"
	PruebaValidaciones = "validaciones"
	PruebaTramitacion  = "tramitacion"
)

// Config parámetros de ejecución.
type Config struct {
	FetchTimeout time.Duration // 0 = sin límite propio, sólo el del contexto
	CacheTTL     time.Duration
}

// AuditUseCase ejecuta las pruebas V.1 a V.4.
type AuditUseCase struct {
	repo    repository.InvoiceRepository
	cache   ReportCache
	metrics Recorder
	log     zerolog.Logger
	cfg     Config
}

// NewAuditUseCase construye el caso de uso. cache y metrics pueden ser nil.
func NewAuditUseCase(
	repo repository.InvoiceRepository,
	cache ReportCache,
	metrics Recorder,
	log zerolog.Logger,
	cfg Config,
) *AuditUseCase {
	if cache == nil {
		cache = noopCache{}
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &AuditUseCase{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		log:     log.With().Str("component", "audit").Logger(),
		cfg:     cfg,
	}
}

// Papel prueba V.1 sobre facturas en papel registradas en el rango (obligatorio).
func (uc *AuditUseCase) Papel(ctx context.Context, params fechas.RangoParams) (*dto.InformePapelDTO, error) {
	return ejecutar(ctx, uc, prueba[dto.InformePapelDTO]{
		nombre:      PruebaPapel,
		requerido:   true,
		electronica: false,
		campoFecha:  repository.CampoFechaRegistroRCF,
		revisar: func(fs []*entity.Invoice, r fechas.Rango) (dto.InformePapelDTO, map[string]int) {
			inf := domaudit.RevisarFacturasPapel(fs, r)
			return toInformePapelDTO(inf), map[string]int{
				"fuera_plazo":         len(inf.FueraDePlazo),
				"sin_fecha":           len(inf.SinFechaPresentacion) + len(inf.SinFechaRegistroRCF),
				"duplicada":           len(inf.DuplicadasPotenciales),
				"error_procesamiento": len(inf.ErroresProcesamiento),
			}
		},
	}, params)
}

// Anotacion prueba V.2 sobre facturas electrónicas registradas en el rango (obligatorio).
func (uc *AuditUseCase) Anotacion(ctx context.Context, params fechas.RangoParams) (*dto.InformeAnotacionDTO, error) {
	return ejecutar(ctx, uc, prueba[dto.InformeAnotacionDTO]{
		nombre:      PruebaAnotacion,
		requerido:   true,
		electronica: true,
		campoFecha:  repository.CampoFechaRegistroRCF,
		revisar: func(fs []*entity.Invoice, r fechas.Rango) (dto.InformeAnotacionDTO, map[string]int) {
			inf := domaudit.RevisarTiemposAnotacion(fs, r)
			return toInformeAnotacionDTO(inf), map[string]int{
				"sin_fecha":       len(inf.SinFechas),
				"tiempo_negativo": len(inf.Anomalias),
			}
		},
	}, params)
}

// Validaciones prueba V.3 sobre facturas electrónicas. El rango, sobre fecha_factura,
// es opcional.
func (uc *AuditUseCase) Validaciones(ctx context.Context, params fechas.RangoParams) (*dto.InformeContenidoDTO, error) {
	return ejecutar(ctx, uc, prueba[dto.InformeContenidoDTO]{
		nombre:      PruebaValidaciones,
		electronica: true,
		campoFecha:  repository.CampoFechaFactura,
		revisar: func(fs []*entity.Invoice, r fechas.Rango) (dto.InformeContenidoDTO, map[string]int) {
			inf := domaudit.RevisarContenido(fs)
			return toInformeContenidoDTO(inf, r), map[string]int{
				"error_contenido": len(inf.ConErrores),
			}
		},
	}, params)
}

// Tramitacion prueba V.4 sobre facturas electrónicas. El rango, sobre fecha_factura,
// es opcional.
func (uc *AuditUseCase) Tramitacion(ctx context.Context, params fechas.RangoParams) (*dto.InformeTramitacionDTO, error) {
	return ejecutar(ctx, uc, prueba[dto.InformeTramitacionDTO]{
		nombre:      PruebaTramitacion,
		electronica: true,
		campoFecha:  repository.CampoFechaFactura,
		revisar: func(fs []*entity.Invoice, r fechas.Rango) (dto.InformeTramitacionDTO, map[string]int) {
			inf := domaudit.RevisarTramitacion(fs)
			return toInformeTramitacionDTO(inf, r), map[string]int{
				"estado_incorrecto": len(inf.EstadoIncorrecto),
			}
		},
	}, params)
}

type prueba[T any] struct {
	nombre      string
	requerido   bool
	electronica bool
	campoFecha  string
	revisar     func([]*entity.Invoice, fechas.Rango) (T, map[string]int)
}

func ejecutar[T any](ctx context.Context, uc *AuditUseCase, p prueba[T], params fechas.RangoParams) (*T, error) {
	inicio := time.Now()
	logger := uc.log.With().Str("prueba", p.nombre).Logger()

	rango, err := fechas.ValidarRango(params, p.requerido)
	if err != nil {
		uc.metrics.ObserveAudit(p.nombre, ResultadoParametros, time.Since(inicio))
		logger.Debug().Err(err).Msg("parámetros rechazados")
		return nil, err
	}

	key := claveInforme(p.nombre, rango)
	var cached T
	if ok, err := uc.cache.Get(ctx, key, &cached); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("caché de informes no disponible")
	} else if ok {
		uc.metrics.ObserveAudit(p.nombre, ResultadoCache, time.Since(inicio))
		return &cached, nil
	}

	facturas, err := uc.buscar(ctx, repository.FiltroFacturas{
		EsElectronica: p.electronica,
		CampoFecha:    p.campoFecha,
		Rango:         rango,
	})
	if err != nil {
		uc.metrics.ObserveAudit(p.nombre, ResultadoNoDisponible, time.Since(inicio))
		logger.Error().Err(err).Msg("no se pudieron recuperar las facturas")
		return nil, err
	}

	informe, hallazgos := p.revisar(facturas, rango)
	for tipo, n := range hallazgos {
		uc.metrics.AddFindings(p.nombre, tipo, n)
	}
	uc.metrics.ObserveAudit(p.nombre, ResultadoOK, time.Since(inicio))

	if err := uc.cache.Set(ctx, key, informe, uc.cfg.CacheTTL); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("no se pudo guardar el informe en caché")
	}

	logger.Info().
		Int("facturas", len(facturas)).
		Dur("duracion", time.Since(inicio)).
		Msg("auditoría completada")
	return &informe, nil
}

// buscar recupera las facturas con el timeout configurado. Cualquier fallo del almacén
// se expone como domain.ErrRetrievalUnavailable.
func (uc *AuditUseCase) buscar(ctx context.Context, filtro repository.FiltroFacturas) ([]*entity.Invoice, error) {
	if uc.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.FetchTimeout)
		defer cancel()
	}
	facturas, err := uc.repo.Buscar(ctx, filtro)
	if err != nil {
		if errors.Is(err, domain.ErrRetrievalUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalUnavailable, err)
	}
	return facturas, nil
}

func claveInforme(prueba string, r fechas.Rango) string {
	if r.Abierto() {
		return prueba + ":todo"
	}
	return prueba + ":" + r.InicioStr() + ":" + r.FinStr()
}

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

// ImportUseCase importa ficheros de facturas.
type ImportUseCase struct {
	tx       TxRunner
	lectores map[string]Lector
	cache    audit.ReportCache
	log      zerolog.Logger
}

// NewImportUseCase construye el caso de uso. cache puede ser nil.
func NewImportUseCase(tx TxRunner, lectores map[string]Lector, cache audit.ReportCache, log zerolog.Logger) *ImportUseCase {
	return &ImportUseCase{
		tx:       tx,
		lectores: lectores,
		cache:    cache,
		log:      log.With().Str("component", "importer").Logger(),
	}
}

// Formatos devuelve los formatos con lector registrado.
func (uc *ImportUseCase) Formatos() []string {
	out := make([]string, 0, len(uc.lectores))
	for f := range uc.lectores {
		out = append(out, f)
	}
	return out
}

// Importar lee el fichero, valida cada registro y guarda los válidos en una transacción.
// Si se guarda al menos una factura se invalidan los informes en caché.
func (uc *ImportUseCase) Importar(ctx context.Context, r io.Reader, formato string, opts Opciones) (*dto.ResultadoImportacionDTO, error) {
	formato = strings.ToLower(strings.TrimSpace(formato))
	lector, ok := uc.lectores[formato]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, formato)
	}

	registros, err := lector.Leer(r, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	res := &dto.ResultadoImportacionDTO{
		Formato:    formato,
		Leidas:     len(registros),
		Rechazadas: []dto.FilaRechazadaDTO{},
	}
	facturas := make([]*entity.Invoice, 0, len(registros))
	for _, reg := range registros {
		f, err := aFactura(reg)
		if err != nil {
			res.Rechazadas = append(res.Rechazadas, dto.FilaRechazadaDTO{Fila: reg.Fila, Error: err.Error()})
			continue
		}
		facturas = append(facturas, f)
	}

	if len(facturas) > 0 {
		err := uc.tx.Run(ctx, func(repo repository.InvoiceRepository) error {
			return repo.Guardar(ctx, facturas)
		})
		if err != nil {
			uc.log.Error().Err(err).Int("facturas", len(facturas)).Msg("no se pudo guardar la importación")
			if errors.Is(err, domain.ErrRetrievalUnavailable) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalUnavailable, err)
		}
		res.Guardadas = len(facturas)

		if uc.cache != nil {
			if err := uc.cache.Invalidate(ctx); err != nil {
				uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de informes")
			}
		}
	}

	uc.log.Info().
		Str("formato", formato).
		Int("leidas", res.Leidas).
		Int("guardadas", res.Guardadas).
		Int("rechazadas", len(res.Rechazadas)).
		Msg("importación completada")
	return res, nil
}

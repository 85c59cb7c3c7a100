package repository

import (
	"context"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// Campos de fecha sobre los que se puede filtrar.
const (
	CampoFechaRegistroRCF = "fecha_registro_rcf"
	CampoFechaFactura     = "fecha_factura"
)

// FiltroFacturas criterio de selección de facturas para una prueba de auditoría.
// Rango es inclusivo sobre la fecha de calendario de CampoFecha; un rango abierto no filtra.
type FiltroFacturas struct {
	EsElectronica bool
	CampoFecha    string
	Rango         fechas.Rango
}

// InvoiceRepository define el puerto de lectura/escritura de facturas.
// Las implementaciones devuelven errores de infraestructura sin clasificar; el caso de
// uso los convierte en domain.ErrRetrievalUnavailable.
type InvoiceRepository interface {
	Buscar(ctx context.Context, filtro FiltroFacturas) ([]*entity.Invoice, error)
	// Listar devuelve facturas ordenadas por fecha_factura descendente.
	Listar(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	Contar(ctx context.Context) (int, error)
	// Guardar inserta o actualiza (por id) las facturas dadas.
	Guardar(ctx context.Context, facturas []*entity.Invoice) error
}

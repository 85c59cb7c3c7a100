// Package memory implementa el repositorio de facturas en memoria. Lo usan las pruebas
// y la CLI cuando se audita un fichero de fixtures sin base de datos.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository almacén en memoria, seguro para uso concurrente. Conserva el orden
// de inserción.
type InvoiceRepository struct {
	mu       sync.RWMutex
	facturas []*entity.Invoice
	index    map[string]int
}

// NewInvoiceRepository crea el repositorio con las facturas iniciales.
func NewInvoiceRepository(facturas ...*entity.Invoice) *InvoiceRepository {
	r := &InvoiceRepository{index: make(map[string]int)}
	r.guardar(facturas)
	return r
}

// Buscar aplica el filtro como lo haría la consulta SQL: una fecha ausente o que no se
// puede interpretar queda fuera de un rango acotado.
func (r *InvoiceRepository) Buscar(ctx context.Context, filtro repository.FiltroFacturas) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Invoice, 0)
	for _, f := range r.facturas {
		if f.EsElectronica != filtro.EsElectronica {
			continue
		}
		if !filtro.Rango.Abierto() && !enRango(f, filtro) {
			continue
		}
		out = append(out, copia(f))
	}
	return out, nil
}

func enRango(f *entity.Invoice, filtro repository.FiltroFacturas) bool {
	var raw string
	switch filtro.CampoFecha {
	case repository.CampoFechaFactura:
		raw = f.FechaFactura
	default:
		raw = entity.Deref(f.FechaRegistroRCF)
	}
	t, err := fechas.ParseTimestamp(raw)
	if err != nil {
		return false
	}
	// los límites del rango son días UTC, igual que en la consulta SQL
	return filtro.Rango.Contiene(t.UTC())
}

// Listar devuelve una página ordenada por fecha_factura descendente (id como desempate).
func (r *InvoiceRepository) Listar(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	ordenadas := make([]*entity.Invoice, len(r.facturas))
	copy(ordenadas, r.facturas)
	r.mu.RUnlock()

	sort.SliceStable(ordenadas, func(i, j int) bool {
		if ordenadas[i].FechaFactura != ordenadas[j].FechaFactura {
			return ordenadas[i].FechaFactura > ordenadas[j].FechaFactura
		}
		return ordenadas[i].ID < ordenadas[j].ID
	})
	if offset >= len(ordenadas) {
		return []*entity.Invoice{}, nil
	}
	end := len(ordenadas)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Invoice, 0, end-offset)
	for _, f := range ordenadas[offset:end] {
		out = append(out, copia(f))
	}
	return out, nil
}

// Contar número total de facturas.
func (r *InvoiceRepository) Contar(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.facturas), nil
}

// Guardar inserta o reemplaza por id.
func (r *InvoiceRepository) Guardar(ctx context.Context, facturas []*entity.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.guardar(facturas)
	return nil
}

func (r *InvoiceRepository) guardar(facturas []*entity.Invoice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range facturas {
		if f == nil {
			continue
		}
		c := copia(f)
		if i, ok := r.index[c.ID]; ok && c.ID != "" {
			r.facturas[i] = c
			continue
		}
		r.index[c.ID] = len(r.facturas)
		r.facturas = append(r.facturas, c)
	}
}

func copia(f *entity.Invoice) *entity.Invoice {
	c := *f
	c.FechaPresentacionRegistro = copiaStr(f.FechaPresentacionRegistro)
	c.FechaRegistroRCF = copiaStr(f.FechaRegistroRCF)
	return &c
}

func copiaStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

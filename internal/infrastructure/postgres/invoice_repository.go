package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// Las marcas de tiempo se leen como texto: un valor que no se pueda interpretar llega a
// la prueba como error por factura en lugar de abortar la consulta completa.
const columnasFactura = `
	id::text,
	COALESCE(numero_factura, ''),
	COALESCE(proveedor_nif, ''),
	COALESCE(es_electronica, false),
	COALESCE(fecha_factura::text, ''),
	fecha_presentacion_registro::text,
	fecha_registro_rcf::text,
	COALESCE(estado, ''),
	total_importe_bruto,
	total_descuentos,
	total_cargos,
	total_importe_bruto_antes_impuestos,
	total_impuestos_repercutidos,
	total_impuestos_retenidos,
	total_factura`

// InvoiceRepo implementación de InvoiceRepository sobre la tabla facturas (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Buscar devuelve las facturas del tipo indicado cuya fecha cae en el rango (inclusivo).
func (r *InvoiceRepo) Buscar(ctx context.Context, filtro repository.FiltroFacturas) ([]*entity.Invoice, error) {
	query, args, err := buildBuscarQuery(filtro)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query facturas: %w", err)
	}
	return scanFacturas(rows)
}

// buildBuscarQuery arma la consulta. Sobre fecha_registro_rcf (timestamp) los límites
// son medianoches UTC y el fin se trata como "< fin + 1 día" para incluir todo el último día.
func buildBuscarQuery(filtro repository.FiltroFacturas) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + columnasFactura + "\nFROM facturas\nWHERE es_electronica = $1")
	args := []any{filtro.EsElectronica}

	if !filtro.Rango.Abierto() {
		if filtro.Rango.Inicio == nil || filtro.Rango.Fin == nil {
			return "", nil, fmt.Errorf("rango incompleto")
		}
		inicio, fin := *filtro.Rango.Inicio, *filtro.Rango.Fin
		switch filtro.CampoFecha {
		case repository.CampoFechaRegistroRCF:
			sb.WriteString(" AND fecha_registro_rcf >= $2 AND fecha_registro_rcf < $3")
			args = append(args, inicio, fin.Add(24*time.Hour))
		case repository.CampoFechaFactura:
			sb.WriteString(" AND fecha_factura >= $2 AND fecha_factura <= $3")
			args = append(args, inicio, fin)
		default:
			return "", nil, fmt.Errorf("campo de fecha no soportado: %q", filtro.CampoFecha)
		}
	}
	sb.WriteString("\nORDER BY id")
	return sb.String(), args, nil
}

// Listar devuelve una página ordenada por fecha_factura descendente.
func (r *InvoiceRepo) Listar(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := "SELECT " + columnasFactura + `
		FROM facturas
		ORDER BY fecha_factura DESC NULLS LAST, id
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	return scanFacturas(rows)
}

// Contar número total de facturas.
func (r *InvoiceRepo) Contar(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM facturas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count facturas: %w", err)
	}
	return n, nil
}

const upsertFactura = `
	INSERT INTO facturas (
		id, numero_factura, proveedor_nif, es_electronica, fecha_factura,
		fecha_presentacion_registro, fecha_registro_rcf, estado,
		total_importe_bruto, total_descuentos, total_cargos, total_importe_bruto_antes_impuestos,
		total_impuestos_repercutidos, total_impuestos_retenidos, total_factura
	) VALUES ($1, $2, $3, $4, $5::date, $6::timestamptz, $7::timestamptz, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (id) DO UPDATE SET
		numero_factura                      = EXCLUDED.numero_factura,
		proveedor_nif                       = EXCLUDED.proveedor_nif,
		es_electronica                      = EXCLUDED.es_electronica,
		fecha_factura                       = EXCLUDED.fecha_factura,
		fecha_presentacion_registro         = EXCLUDED.fecha_presentacion_registro,
		fecha_registro_rcf                  = EXCLUDED.fecha_registro_rcf,
		estado                              = EXCLUDED.estado,
		total_importe_bruto                 = EXCLUDED.total_importe_bruto,
		total_descuentos                    = EXCLUDED.total_descuentos,
		total_cargos                        = EXCLUDED.total_cargos,
		total_importe_bruto_antes_impuestos = EXCLUDED.total_importe_bruto_antes_impuestos,
		total_impuestos_repercutidos        = EXCLUDED.total_impuestos_repercutidos,
		total_impuestos_retenidos           = EXCLUDED.total_impuestos_retenidos,
		total_factura                       = EXCLUDED.total_factura`

// Guardar inserta o actualiza por id en un único batch.
func (r *InvoiceRepo) Guardar(ctx context.Context, facturas []*entity.Invoice) error {
	if len(facturas) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, f := range facturas {
		t := f.Totales
		batch.Queue(upsertFactura,
			f.ID, f.NumeroFactura, f.ProveedorNIF, f.EsElectronica, f.FechaFactura,
			f.FechaPresentacionRegistro, f.FechaRegistroRCF, nullIfEmpty(f.Estado),
			t.ImporteBruto, t.Descuentos, t.Cargos, t.ImporteBrutoAntesImpuestos,
			t.ImpuestosRepercutidos, t.ImpuestosRetenidos, t.TotalFactura,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, f := range facturas {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("upsert factura %s: %w", f.ID, err)
		}
	}
	return br.Close()
}

func scanFacturas(rows pgx.Rows) ([]*entity.Invoice, error) {
	defer rows.Close()
	out := make([]*entity.Invoice, 0)
	for rows.Next() {
		var f entity.Invoice
		t := &f.Totales
		if err := rows.Scan(
			&f.ID, &f.NumeroFactura, &f.ProveedorNIF, &f.EsElectronica, &f.FechaFactura,
			&f.FechaPresentacionRegistro, &f.FechaRegistroRCF, &f.Estado,
			&t.ImporteBruto, &t.Descuentos, &t.Cargos, &t.ImporteBrutoAntesImpuestos,
			&t.ImpuestosRepercutidos, &t.ImpuestosRetenidos, &t.TotalFactura,
		); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar facturas: %w", err)
	}
	return out, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

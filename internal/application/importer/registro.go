package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// aFactura valida un registro y lo convierte en factura.
//
// Se rechazan las filas sin número, NIF o fecha de factura válida, y las que traen
// marcas de tiempo que el almacén no podría guardar. Los importes ausentes o no
// numéricos se conservan como nulos: son hallazgos de la prueba de contenido.
func aFactura(reg Registro) (*entity.Invoice, error) {
	get := func(col string) string { return strings.TrimSpace(reg.Campos[col]) }

	numero := get(ColNumeroFactura)
	if numero == "" {
		return nil, fmt.Errorf("%w: falta %s", domain.ErrInvalidRecord, ColNumeroFactura)
	}
	nif := get(ColProveedorNIF)
	if nif == "" {
		return nil, fmt.Errorf("%w: falta %s", domain.ErrInvalidRecord, ColProveedorNIF)
	}
	emision, err := fechas.ParseTimestamp(get(ColFechaFactura))
	if err != nil {
		return nil, fmt.Errorf("%w: %s inválida: %v", domain.ErrInvalidRecord, ColFechaFactura, err)
	}
	electronica, err := parsearBool(get(ColEsElectronica))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidRecord, ColEsElectronica, err)
	}

	for _, col := range []string{ColFechaPresentacion, ColFechaRegistroRCF} {
		if v := get(col); v != "" {
			if _, err := fechas.ParseTimestamp(v); err != nil {
				return nil, fmt.Errorf("%w: %s inválida: %v", domain.ErrInvalidRecord, col, err)
			}
		}
	}

	id := get(ColID)
	if id == "" {
		id = uuid.New().String()
	}

	return &entity.Invoice{
		ID:                        id,
		NumeroFactura:             numero,
		ProveedorNIF:              nif,
		EsElectronica:             electronica,
		FechaFactura:              fechas.FechaCivil(emision).Format(fechas.LayoutFecha),
		FechaPresentacionRegistro: opcional(get(ColFechaPresentacion)),
		FechaRegistroRCF:          opcional(get(ColFechaRegistroRCF)),
		Estado:                    get(ColEstado),
		Totales: entity.Totales{
			ImporteBruto:               parsearImporte(get("total_importe_bruto")),
			Descuentos:                 parsearImporte(get("total_descuentos")),
			Cargos:                     parsearImporte(get("total_cargos")),
			ImporteBrutoAntesImpuestos: parsearImporte(get("total_importe_bruto_antes_impuestos")),
			ImpuestosRepercutidos:      parsearImporte(get("total_impuestos_repercutidos")),
			ImpuestosRetenidos:         parsearImporte(get("total_impuestos_retenidos")),
			TotalFactura:               parsearImporte(get("total_factura")),
		},
	}, nil
}

func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parsearBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "1", "si", "sí", "s", "yes", "y":
		return true, nil
	case "false", "f", "0", "no", "n", "":
		return false, nil
	default:
		return false, fmt.Errorf("valor booleano no reconocido %q", s)
	}
}

// parsearImporte admite punto o coma decimal. El último separador que aparece es el
// decimal y el otro se toma como separador de miles: "1.234,56" y "1,234.56" valen
// 1234.56. Un valor ausente, no numérico o ambiguo queda como NullDecimal inválido.
func parsearImporte(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	coma, punto := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case coma >= 0 && punto > coma:
		s = strings.ReplaceAll(s, ",", "")
	case coma >= 0:
		if strings.Count(s, ",") > 1 {
			return decimal.NullDecimal{}
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	if strings.Count(s, ".") > 1 {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

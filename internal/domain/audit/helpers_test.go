package audit_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
)

func ptr(s string) *string { return &s }

func papel(id, nif, num, fecha string) *entity.Invoice {
	return &entity.Invoice{ID: id, ProveedorNIF: nif, NumeroFactura: num, FechaFactura: fecha}
}

func conFechas(f *entity.Invoice, presentacion, registro string) *entity.Invoice {
	if presentacion != "" {
		f.FechaPresentacionRegistro = ptr(presentacion)
	}
	if registro != "" {
		f.FechaRegistroRCF = ptr(registro)
	}
	return f
}

func importe(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func totales(bruto, descuentos, cargos, base, repercutidos, retenidos, total string) entity.Totales {
	return entity.Totales{
		ImporteBruto:               importe(bruto),
		Descuentos:                 importe(descuentos),
		Cargos:                     importe(cargos),
		ImporteBrutoAntesImpuestos: importe(base),
		ImpuestosRepercutidos:      importe(repercutidos),
		ImpuestosRetenidos:         importe(retenidos),
		TotalFactura:               importe(total),
	}
}

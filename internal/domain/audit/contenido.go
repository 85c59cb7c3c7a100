package audit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
)

// Mensajes de la prueba V.3.
const (
	ErrCalculoBaseImponible = "Error en cálculo de total_importe_bruto_antes_impuestos"
	ErrCalculoTotalFactura  = "Error en cálculo de total_factura"
	prefijoErrorNumerico    = "Error al procesar datos numéricos: "
)

// InformeContenido resultado de la prueba V.3: coherencia aritmética de los totales.
type InformeContenido struct {
	TotalValidadas int
	ConErrores     []FacturaConErrores
}

// FacturaConErrores factura con al menos un error de validación.
type FacturaConErrores struct {
	ID            string
	NumeroFactura string
	Errores       []string
}

// RevisarContenido ejecuta la prueba V.3. Cada importe se redondea a 2 decimales
// antes de comparar:
//
//	bruto - descuentos + cargos                  == bruto_antes_impuestos
//	bruto_antes_impuestos + repercutidos - retenidos == total_factura
//
// Si falta algún importe no se valida parcialmente: se anota un único error numérico.
func RevisarContenido(facturas []*entity.Invoice) InformeContenido {
	inf := InformeContenido{
		TotalValidadas: len(facturas),
		ConErrores:     []FacturaConErrores{},
	}
	for _, f := range facturas {
		if errores := validarTotales(f.Totales); len(errores) > 0 {
			inf.ConErrores = append(inf.ConErrores, FacturaConErrores{
				ID:            f.ID,
				NumeroFactura: f.NumeroFactura,
				Errores:       errores,
			})
		}
	}
	return inf
}

func validarTotales(t entity.Totales) []string {
	var invalidos []string
	for _, c := range t.Campos() {
		if !c.Valor.Valid {
			invalidos = append(invalidos, c.Nombre)
		}
	}
	if len(invalidos) > 0 {
		return []string{fmt.Sprintf("%simporte ausente o no numérico en %s", prefijoErrorNumerico, strings.Join(invalidos, ", "))}
	}

	r := func(d decimal.NullDecimal) decimal.Decimal { return d.Decimal.Round(2) }
	var errores []string

	base := r(t.ImporteBruto).Sub(r(t.Descuentos)).Add(r(t.Cargos)).Round(2)
	if !base.Equal(r(t.ImporteBrutoAntesImpuestos)) {
		errores = append(errores, ErrCalculoBaseImponible)
	}
	total := r(t.ImporteBrutoAntesImpuestos).Add(r(t.ImpuestosRepercutidos)).Sub(r(t.ImpuestosRetenidos)).Round(2)
	if !total.Equal(r(t.TotalFactura)) {
		errores = append(errores, ErrCalculoTotalFactura)
	}
	return errores
}

package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de tramitación admitidos en el RCF (sensibles a mayúsculas).
const (
	EstadoRegistrada        = "REGISTRADA"
	EstadoRegistradaRCF     = "REGISTRADA EN RCF"
	EstadoVerificadaRCF     = "VERIFICADA EN RCF"
	EstadoRecibidaEnDestino = "RECIBIDA EN DESTINO"
	EstadoConformada        = "CONFORMADA"
	EstadoContabilizada     = "CONTABILIZADA"
	EstadoPagada            = "PAGADA"
	EstadoAnulada           = "ANULADA"
	EstadoRechazada         = "RECHAZADA"
)

// Invoice factura registrada en el RCF. Es una entrada inmutable para las pruebas de
// auditoría: ninguna prueba la modifica.
//
// Las marcas de tiempo se conservan tal como vienen del almacén (texto ISO-8601) para
// que un valor mal formado se reporte por factura en lugar de abortar la consulta.
type Invoice struct {
	ID            string
	NumeroFactura string
	ProveedorNIF  string
	EsElectronica bool
	FechaFactura  string // fecha de emisión, YYYY-MM-DD

	FechaPresentacionRegistro *string // presentación en el registro administrativo / punto general
	FechaRegistroRCF          *string // anotación en el RCF

	Estado  string
	Totales Totales
}

// Totales importes de la factura. Un importe no válido (ausente o no numérico) tiene Valid=false.
type Totales struct {
	ImporteBruto               decimal.NullDecimal
	Descuentos                 decimal.NullDecimal
	Cargos                     decimal.NullDecimal
	ImporteBrutoAntesImpuestos decimal.NullDecimal
	ImpuestosRepercutidos      decimal.NullDecimal
	ImpuestosRetenidos         decimal.NullDecimal
	TotalFactura               decimal.NullDecimal
}

// Campos devuelve los importes con su nombre de columna, en orden estable.
func (t Totales) Campos() []CampoImporte {
	return []CampoImporte{
		{"total_importe_bruto", t.ImporteBruto},
		{"total_descuentos", t.Descuentos},
		{"total_cargos", t.Cargos},
		{"total_importe_bruto_antes_impuestos", t.ImporteBrutoAntesImpuestos},
		{"total_impuestos_repercutidos", t.ImpuestosRepercutidos},
		{"total_impuestos_retenidos", t.ImpuestosRetenidos},
		{"total_factura", t.TotalFactura},
	}
}

// CampoImporte par nombre/valor de un importe.
type CampoImporte struct {
	Nombre string
	Valor  decimal.NullDecimal
}

// ClaveDuplicado identidad de una factura para detectar presentaciones duplicadas.
type ClaveDuplicado struct {
	NIF    string
	Numero string
	Fecha  string
}

// TieneDato indica si un campo opcional de texto trae contenido.
func TieneDato(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Deref devuelve el valor de un campo opcional o "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

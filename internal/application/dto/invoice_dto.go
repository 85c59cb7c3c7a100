package dto

import "github.com/shopspring/decimal"

// FacturaDTO factura en el listado GET /api/facturas.
type FacturaDTO struct {
	ID                         string              `json:"id"`
	NumeroFactura              string              `json:"numero_factura"`
	ProveedorNIF               string              `json:"proveedor_nif"`
	EsElectronica              bool                `json:"es_electronica"`
	FechaFactura               string              `json:"fecha_factura"`
	FechaPresentacionRegistro  *string             `json:"fecha_presentacion_registro"`
	FechaRegistroRCF           *string             `json:"fecha_registro_rcf"`
	Estado                     string              `json:"estado"`
	TotalImporteBruto          decimal.NullDecimal `json:"total_importe_bruto"`
	TotalDescuentos            decimal.NullDecimal `json:"total_descuentos"`
	TotalCargos                decimal.NullDecimal `json:"total_cargos"`
	TotalBrutoAntesImpuestos   decimal.NullDecimal `json:"total_importe_bruto_antes_impuestos"`
	TotalImpuestosRepercutidos decimal.NullDecimal `json:"total_impuestos_repercutidos"`
	TotalImpuestosRetenidos    decimal.NullDecimal `json:"total_impuestos_retenidos"`
	TotalFactura               decimal.NullDecimal `json:"total_factura"`
}

// ListaFacturasDTO respuesta paginada de GET /api/facturas.
type ListaFacturasDTO struct {
	Data    []FacturaDTO `json:"data"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Total   int          `json:"total"`
}

// ResultadoImportacionDTO respuesta de POST /api/facturas/importar.
type ResultadoImportacionDTO struct {
	Formato    string             `json:"formato"`
	Leidas     int                `json:"leidas"`
	Guardadas  int                `json:"guardadas"`
	Rechazadas []FilaRechazadaDTO `json:"rechazadas"`
}

// FilaRechazadaDTO registro que no superó la validación de ingesta.
type FilaRechazadaDTO struct {
	Fila  int    `json:"fila"`
	Error string `json:"error"`
}

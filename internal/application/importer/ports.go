// Package importer carga facturas en el almacén a partir de ficheros CSV, Facturae o
// JSON. Valida cada registro en la frontera de ingesta: las filas con errores se
// informan y el resto se guarda en una única transacción.
package importer

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

// Formatos soportados.
const (
	FormatoCSV      = "csv"
	FormatoFacturae = "facturae"
	FormatoJSON     = "json"
)

// Nombres de columna de un registro. Coinciden con la cabecera CSV y con el JSON de la API.
const (
	ColID                = "id"
	ColNumeroFactura     = "numero_factura"
	ColProveedorNIF      = "proveedor_nif"
	ColEsElectronica     = "es_electronica"
	ColFechaFactura      = "fecha_factura"
	ColFechaPresentacion = "fecha_presentacion_registro"
	ColFechaRegistroRCF  = "fecha_registro_rcf"
	ColEstado            = "estado"
)

// Registro fila cruda leída de un fichero: columna → valor sin interpretar.
type Registro struct {
	Fila   int
	Campos map[string]string
}

// Opciones de lectura.
type Opciones struct {
	Charset string // utf-8 (por defecto), iso-8859-1, windows-1252
}

// Lector convierte un fichero en registros crudos. Un error aquí invalida el fichero entero.
type Lector interface {
	Leer(r io.Reader, opts Opciones) ([]Registro, error)
}

// TxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error
}

// FormatoPorExtension deduce el formato a partir del nombre del fichero. CSV por defecto.
func FormatoPorExtension(nombre string) string {
	switch strings.ToLower(filepath.Ext(nombre)) {
	case ".xml", ".xsig":
		return FormatoFacturae
	case ".json":
		return FormatoJSON
	default:
		return FormatoCSV
	}
}

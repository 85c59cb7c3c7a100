package ingest

import "github.com/jhoicas/Auditoria-RCF/internal/application/importer"

// Lectores devuelve los lectores disponibles indexados por formato.
func Lectores() map[string]importer.Lector {
	return map[string]importer.Lector{
		importer.FormatoCSV:      CSVReader{},
		importer.FormatoFacturae: FacturaeReader{},
		importer.FormatoJSON:     JSONReader{},
	}
}

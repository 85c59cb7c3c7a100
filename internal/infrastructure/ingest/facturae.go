package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
)

var _ importer.Lector = FacturaeReader{}

// FacturaeReader lee ficheros Facturae 3.2.x: un emisor (SellerParty) y uno o más
// Invoice. Los elementos se buscan por nombre local, con o sin prefijo de namespace.
type FacturaeReader struct{}

// totalesFacturae InvoiceTotals → columna del registro. Los descuentos y recargos
// generales son opcionales en el formato; su ausencia equivale a 0.
var totalesFacturae = []struct {
	elemento string
	columna  string
	opcional bool
}{
	{"TotalGrossAmount", "total_importe_bruto", false},
	{"TotalGeneralDiscounts", "total_descuentos", true},
	{"TotalGeneralSurcharges", "total_cargos", true},
	{"TotalGrossAmountBeforeTaxes", "total_importe_bruto_antes_impuestos", false},
	{"TotalTaxOutputs", "total_impuestos_repercutidos", false},
	{"TotalTaxesWithheld", "total_impuestos_retenidos", true},
	{"InvoiceTotal", "total_factura", false},
}

// Leer devuelve un registro por Invoice; Fila es su posición (desde 1). El charset
// lo declara el propio XML, opts.Charset se ignora.
func (FacturaeReader) Leer(r io.Reader, _ importer.Opciones) ([]importer.Registro, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReaderXML
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("facturae: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "Facturae" {
		return nil, fmt.Errorf("facturae: el documento no es Facturae")
	}

	nif := texto(root.FindElement("./Parties/SellerParty/TaxIdentification/TaxIdentificationNumber"))
	facturas := root.FindElements("./Invoices/Invoice")
	if len(facturas) == 0 {
		return nil, fmt.Errorf("facturae: no contiene facturas")
	}

	out := make([]importer.Registro, 0, len(facturas))
	for i, inv := range facturas {
		campos := map[string]string{
			importer.ColNumeroFactura: texto(inv.FindElement("./InvoiceHeader/InvoiceSeriesCode")) +
				texto(inv.FindElement("./InvoiceHeader/InvoiceNumber")),
			importer.ColProveedorNIF:  nif,
			importer.ColEsElectronica: "true",
			importer.ColFechaFactura:  texto(inv.FindElement("./InvoiceIssueData/IssueDate")),
			importer.ColEstado:        entity.EstadoRegistrada,
		}
		totales := inv.FindElement("./InvoiceTotals")
		for _, t := range totalesFacturae {
			var v string
			if totales != nil {
				v = texto(totales.FindElement("./" + t.elemento))
			}
			if v == "" && t.opcional {
				v = "0"
			}
			campos[t.columna] = v
		}
		out = append(out, importer.Registro{Fila: i + 1, Campos: campos})
	}
	return out, nil
}

func texto(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}

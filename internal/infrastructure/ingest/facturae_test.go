package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
)

const facturaeXML = `<?xml version="1.0" encoding="UTF-8"?>
<fe:Facturae xmlns:fe="http://www.facturae.gob.es/formato/Versiones/Facturaev3_2_2.xml">
  <FileHeader><SchemaVersion>3.2.2</SchemaVersion></FileHeader>
  <Parties>
    <SellerParty>
      <TaxIdentification>
        <PersonTypeCode>J</PersonTypeCode>
        <TaxIdentificationNumber>ESB12345678</TaxIdentificationNumber>
      </TaxIdentification>
    </SellerParty>
  </Parties>
  <Invoices>
    <Invoice>
      <InvoiceHeader>
        <InvoiceNumber>0001</InvoiceNumber>
        <InvoiceSeriesCode>A</InvoiceSeriesCode>
      </InvoiceHeader>
      <InvoiceIssueData><IssueDate>2024-02-10</IssueDate></InvoiceIssueData>
      <InvoiceTotals>
        <TotalGrossAmount>100.00</TotalGrossAmount>
        <TotalGrossAmountBeforeTaxes>100.00</TotalGrossAmountBeforeTaxes>
        <TotalTaxOutputs>21.00</TotalTaxOutputs>
        <TotalTaxesWithheld>0.00</TotalTaxesWithheld>
        <InvoiceTotal>121.00</InvoiceTotal>
      </InvoiceTotals>
    </Invoice>
    <Invoice>
      <InvoiceHeader><InvoiceNumber>0002</InvoiceNumber></InvoiceHeader>
      <InvoiceIssueData><IssueDate>2024-02-11</IssueDate></InvoiceIssueData>
    </Invoice>
  </Invoices>
</fe:Facturae>`

func TestFacturaeReader(t *testing.T) {
	regs, err := ingest.FacturaeReader{}.Leer(strings.NewReader(facturaeXML), importer.Opciones{})
	require.NoError(t, err)
	require.Len(t, regs, 2)

	c := regs[0].Campos
	assert.Equal(t, 1, regs[0].Fila)
	assert.Equal(t, "A0001", c[importer.ColNumeroFactura])
	assert.Equal(t, "ESB12345678", c[importer.ColProveedorNIF])
	assert.Equal(t, "true", c[importer.ColEsElectronica])
	assert.Equal(t, "2024-02-10", c[importer.ColFechaFactura])
	assert.Equal(t, entity.EstadoRegistrada, c[importer.ColEstado])
	assert.Equal(t, "100.00", c["total_importe_bruto"])
	assert.Equal(t, "0", c["total_descuentos"])
	assert.Equal(t, "0", c["total_cargos"])
	assert.Equal(t, "121.00", c["total_factura"])

	// Sin InvoiceTotals los importes obligatorios quedan vacíos.
	assert.Equal(t, "0002", regs[1].Campos[importer.ColNumeroFactura])
	assert.Empty(t, regs[1].Campos["total_factura"])
}

func TestFacturaeReader_ISO88591(t *testing.T) {
	xml := strings.Replace(facturaeXML, `encoding="UTF-8"`, `encoding="ISO-8859-1"`, 1)
	xml = strings.Replace(xml, "ESB12345678", "ESÑ1234567", 1)
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(xml))
	require.NoError(t, err)

	regs, err := ingest.FacturaeReader{}.Leer(bytes.NewReader(latin1), importer.Opciones{})
	require.NoError(t, err)
	assert.Equal(t, "ESÑ1234567", regs[0].Campos[importer.ColProveedorNIF])
}

func TestFacturaeReader_Invalido(t *testing.T) {
	_, err := ingest.FacturaeReader{}.Leer(strings.NewReader("<otro/>"), importer.Opciones{})
	assert.Error(t, err)

	_, err = ingest.FacturaeReader{}.Leer(strings.NewReader("<Facturae><Invoices/></Facturae>"), importer.Opciones{})
	assert.ErrorContains(t, err, "no contiene facturas")

	_, err = ingest.FacturaeReader{}.Leer(strings.NewReader("<Facturae>"), importer.Opciones{})
	assert.Error(t, err)
}

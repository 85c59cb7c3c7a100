package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	domaudit "github.com/jhoicas/Auditoria-RCF/internal/domain/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/memory"
)

const cabecera = "id;numero_factura;proveedor_nif;es_electronica;fecha_factura;" +
	"fecha_presentacion_registro;fecha_registro_rcf;estado;total_importe_bruto;total_descuentos;" +
	"total_cargos;total_importe_bruto_antes_impuestos;total_impuestos_repercutidos;" +
	"total_impuestos_retenidos;total_factura\n"

type spyCache struct{ invalidaciones int }

func (s *spyCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (s *spyCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (s *spyCache) Invalidate(context.Context) error {
	s.invalidaciones++
	return nil
}

type failingTx struct{}

func (failingTx) Run(context.Context, func(repository.InvoiceRepository) error) error {
	return errors.New("conexión rechazada")
}

func lectores() map[string]importer.Lector {
	return ingest.Lectores()
}

func TestImportar_CSV(t *testing.T) {
	repo := memory.NewInvoiceRepository()
	cache := &spyCache{}
	uc := importer.NewImportUseCase(repo, lectores(), cache, zerolog.Nop())
	ctx := context.Background()

	in := cabecera +
		"1;F-1;B1;true;2024-01-02;2024-01-02T10:00:00;2024-01-02T10:30:00;PAGADA;100;0;0;100;21;0;121\n" +
		";F-2;B1;si;2024-01-03;;;CONFORMADA;1.000,50;0;0;1.000,50;0;0;abc\n" +
		"3;;B1;true;2024-01-03;;;PAGADA;1;0;0;1;0;0;1\n" +
		"4;F-4;B1;quizá;2024-01-03;;;PAGADA;1;0;0;1;0;0;1\n" +
		"5;F-5;B1;false;03/01/2024;;;PAGADA;1;0;0;1;0;0;1\n"

	res, err := uc.Importar(ctx, strings.NewReader(in), "CSV", importer.Opciones{})
	require.NoError(t, err)

	assert.Equal(t, "csv", res.Formato)
	assert.Equal(t, 5, res.Leidas)
	assert.Equal(t, 2, res.Guardadas)
	require.Len(t, res.Rechazadas, 3)
	assert.Equal(t, 4, res.Rechazadas[0].Fila)
	assert.Contains(t, res.Rechazadas[0].Error, "numero_factura")
	assert.Equal(t, 5, res.Rechazadas[1].Fila)
	assert.Equal(t, 6, res.Rechazadas[2].Fila)
	assert.Equal(t, 1, cache.invalidaciones)

	facturas, err := repo.Buscar(ctx, repository.FiltroFacturas{EsElectronica: true})
	require.NoError(t, err)
	require.Len(t, facturas, 2)

	// Sin id se genera un UUID.
	_, err = uuid.Parse(facturas[1].ID)
	assert.NoError(t, err)
	assert.Nil(t, facturas[1].FechaRegistroRCF)
	assert.Equal(t, "1000.5", facturas[1].Totales.ImporteBruto.Decimal.String())

	// El importe no numérico llega a la prueba de contenido.
	inf := domaudit.RevisarContenido(facturas)
	require.Len(t, inf.ConErrores, 1)
	assert.Equal(t, "F-2", inf.ConErrores[0].NumeroFactura)
	assert.Contains(t, inf.ConErrores[0].Errores[0], "total_factura")
}

func TestImportar_Facturae(t *testing.T) {
	repo := memory.NewInvoiceRepository()
	uc := importer.NewImportUseCase(repo, lectores(), nil, zerolog.Nop())

	xml := `<Facturae><Parties><SellerParty><TaxIdentification>
	<TaxIdentificationNumber>B99</TaxIdentificationNumber></TaxIdentification></SellerParty></Parties>
	<Invoices><Invoice><InvoiceHeader><InvoiceNumber>7</InvoiceNumber></InvoiceHeader>
	<InvoiceIssueData><IssueDate>2024-05-01</IssueDate></InvoiceIssueData>
	<InvoiceTotals><TotalGrossAmount>10</TotalGrossAmount><TotalGrossAmountBeforeTaxes>10</TotalGrossAmountBeforeTaxes>
	<TotalTaxOutputs>2.1</TotalTaxOutputs><InvoiceTotal>12.1</InvoiceTotal></InvoiceTotals></Invoice></Invoices></Facturae>`

	res, err := uc.Importar(context.Background(), strings.NewReader(xml), importer.FormatoFacturae, importer.Opciones{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Guardadas)

	facturas, err := repo.Listar(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, facturas, 1)
	assert.True(t, facturas[0].EsElectronica)
	assert.Equal(t, "B99", facturas[0].ProveedorNIF)
	assert.Empty(t, domaudit.RevisarContenido(facturas).ConErrores)
}

func TestImportar_FormatoDesconocido(t *testing.T) {
	uc := importer.NewImportUseCase(memory.NewInvoiceRepository(), lectores(), nil, zerolog.Nop())

	_, err := uc.Importar(context.Background(), strings.NewReader(""), "xlsx", importer.Opciones{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Importar(context.Background(), strings.NewReader("{"), importer.FormatoJSON, importer.Opciones{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportar_FalloAlGuardar(t *testing.T) {
	cache := &spyCache{}
	uc := importer.NewImportUseCase(failingTx{}, lectores(), cache, zerolog.Nop())

	in := `[{"numero_factura": "F", "proveedor_nif": "B", "fecha_factura": "2024-01-01"}]`
	_, err := uc.Importar(context.Background(), strings.NewReader(in), importer.FormatoJSON, importer.Opciones{})
	assert.ErrorIs(t, err, domain.ErrRetrievalUnavailable)
	assert.Zero(t, cache.invalidaciones)
}

func TestImportar_SinFilasValidasNoGuarda(t *testing.T) {
	cache := &spyCache{}
	uc := importer.NewImportUseCase(failingTx{}, lectores(), cache, zerolog.Nop())

	res, err := uc.Importar(context.Background(), strings.NewReader(`[{"numero_factura": ""}]`), importer.FormatoJSON, importer.Opciones{})
	require.NoError(t, err)
	assert.Zero(t, res.Guardadas)
	assert.Len(t, res.Rechazadas, 1)
	assert.Zero(t, cache.invalidaciones)
}

func TestImportar_RechazaMarcasDeTiempoMalformadas(t *testing.T) {
	repo := memory.NewInvoiceRepository()
	uc := importer.NewImportUseCase(repo, lectores(), nil, zerolog.Nop())

	in := cabecera +
		"1;F-1;B1;false;2024-01-02;2024-13-45T10:00:00;2024-01-03T10:00:00;REGISTRADA;1;0;0;1;0;0;1\n" +
		"2;F-2;B1;false;2024-01-02;2024-01-02T10:00:00;mañana;REGISTRADA;1;0;0;1;0;0;1\n" +
		"3;F-3;B1;false;2024-01-02;2024-01-02T10:00:00;2024-01-03T10:00:00;REGISTRADA;1;0;0;1;0;0;1\n"

	res, err := uc.Importar(context.Background(), strings.NewReader(in), importer.FormatoCSV, importer.Opciones{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Guardadas)
	require.Len(t, res.Rechazadas, 2)
	assert.Equal(t, 2, res.Rechazadas[0].Fila)
	assert.Contains(t, res.Rechazadas[0].Error, "fecha_presentacion_registro")
	assert.Equal(t, 3, res.Rechazadas[1].Fila)
	assert.Contains(t, res.Rechazadas[1].Error, "fecha_registro_rcf")
}

func TestFormatoPorExtension(t *testing.T) {
	assert.Equal(t, importer.FormatoFacturae, importer.FormatoPorExtension("lote.XML"))
	assert.Equal(t, importer.FormatoFacturae, importer.FormatoPorExtension("firmada.xsig"))
	assert.Equal(t, importer.FormatoJSON, importer.FormatoPorExtension("a/b/fixture.json"))
	assert.Equal(t, importer.FormatoCSV, importer.FormatoPorExtension("facturas.txt"))
}

func TestImportar_FormatosDeImporte(t *testing.T) {
	casos := []struct {
		valor  string
		valido bool
		want   string
	}{
		{"1234.56", true, "1234.56"},
		{"1.234,56", true, "1234.56"},
		{"1,234.56", true, "1234.56"},
		{"1,234,567.89", true, "1234567.89"},
		{"1.234.567,89", true, "1234567.89"},
		{"12,5", true, "12.5"},
		{" 7 ", true, "7"},
		{"1,2,3", false, ""},
		{"1.2.3", false, ""},
		{"abc", false, ""},
		{"", false, ""},
	}
	for _, tc := range casos {
		t.Run(tc.valor, func(t *testing.T) {
			repo := memory.NewInvoiceRepository()
			uc := importer.NewImportUseCase(repo, lectores(), nil, zerolog.Nop())
			in := `[{"id": "1", "numero_factura": "F-1", "proveedor_nif": "B1", "es_electronica": true,` +
				` "fecha_factura": "2024-01-02", "total_factura": "` + tc.valor + `"}]`

			res, err := uc.Importar(context.Background(), strings.NewReader(in), importer.FormatoJSON, importer.Opciones{})
			require.NoError(t, err)
			require.Equal(t, 1, res.Guardadas)

			facturas, err := repo.Buscar(context.Background(), repository.FiltroFacturas{EsElectronica: true})
			require.NoError(t, err)
			require.Len(t, facturas, 1)
			total := facturas[0].Totales.TotalFactura
			assert.Equal(t, tc.valido, total.Valid)
			if tc.valido {
				assert.Equal(t, tc.want, total.Decimal.String())
			}
		})
	}
}

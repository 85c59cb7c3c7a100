package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/infrastructure/ingest"
)

func TestCSVReader_PuntoYComa(t *testing.T) {
	in := "id;numero_factura;proveedor_nif;total_factura\n" +
		"1;F-1;B123;121,00\n" +
		"2;F-2;B124\n"

	regs, err := ingest.CSVReader{}.Leer(strings.NewReader(in), importer.Opciones{})
	require.NoError(t, err)
	require.Len(t, regs, 2)

	assert.Equal(t, 2, regs[0].Fila)
	assert.Equal(t, "F-1", regs[0].Campos["numero_factura"])
	assert.Equal(t, "121,00", regs[0].Campos["total_factura"])
	assert.Equal(t, 3, regs[1].Fila)
	assert.Empty(t, regs[1].Campos["total_factura"])
}

func TestCSVReader_ComaYCabeceraNormalizada(t *testing.T) {
	in := "\ufeffID, Numero_Factura ,proveedor_nif\n7,\"F,7\",A1\n"

	regs, err := ingest.CSVReader{}.Leer(strings.NewReader(in), importer.Opciones{Charset: "utf-8"})
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "7", regs[0].Campos["id"])
	assert.Equal(t, "F,7", regs[0].Campos["numero_factura"])
}

func TestCSVReader_Latin1(t *testing.T) {
	utf8 := "numero_factura;proveedor_nif;estado\nF-1;ñ123;RECIBIDA EN DESTINO\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(utf8))
	require.NoError(t, err)

	regs, err := ingest.CSVReader{}.Leer(bytes.NewReader(latin1), importer.Opciones{Charset: "ISO-8859-1"})
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "ñ123", regs[0].Campos["proveedor_nif"])
}

func TestCSVReader_Errores(t *testing.T) {
	_, err := ingest.CSVReader{}.Leer(strings.NewReader(""), importer.Opciones{})
	assert.Error(t, err)

	_, err = ingest.CSVReader{}.Leer(strings.NewReader("a;b\n1;2\n"), importer.Opciones{})
	assert.ErrorContains(t, err, "numero_factura")

	_, err = ingest.CSVReader{}.Leer(strings.NewReader("numero_factura\nF\n"), importer.Opciones{Charset: "klingon"})
	assert.ErrorContains(t, err, "charset")
}

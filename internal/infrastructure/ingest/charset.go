// Package ingest lee ficheros de facturas (CSV, Facturae, JSON) y los convierte en
// registros crudos para el importador.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodificador devuelve un lector que convierte el charset indicado a UTF-8.
// Vacío equivale a UTF-8; se descarta el BOM si lo hay.
func decodificador(r io.Reader, charset string) (io.Reader, error) {
	enc, err := encodingPorNombre(charset)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

func encodingPorNombre(charset string) (encoding.Encoding, error) {
	nombre := strings.ToLower(strings.TrimSpace(charset))
	switch nombre {
	case "", "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin1", "latin-1":
		nombre = "iso-8859-1"
	case "cp1252":
		nombre = "windows-1252"
	}
	enc, err := htmlindex.Get(nombre)
	if err != nil {
		return nil, fmt.Errorf("charset %q no soportado", charset)
	}
	return enc, nil
}

// charsetReaderXML adapta encodingPorNombre a la firma que espera el decodificador XML.
func charsetReaderXML(label string, input io.Reader) (io.Reader, error) {
	enc, err := encodingPorNombre(label)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}

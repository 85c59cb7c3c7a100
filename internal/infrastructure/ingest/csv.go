package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
)

var _ importer.Lector = CSVReader{}

// CSVReader lee CSV con cabecera. El separador (';' o ',') se detecta en la cabecera.
type CSVReader struct{}

// Leer devuelve una fila por registro; Fila es el número de línea lógica (la cabecera es la 1).
func (CSVReader) Leer(r io.Reader, opts importer.Opciones) ([]importer.Registro, error) {
	dec, err := decodificador(r, opts.Charset)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(dec)
	sep, err := detectarSeparador(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	cabecera, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv: fichero vacío")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: leer cabecera: %w", err)
	}
	for i := range cabecera {
		cabecera[i] = strings.ToLower(strings.TrimSpace(cabecera[i]))
	}
	if !slices.Contains(cabecera, importer.ColNumeroFactura) {
		return nil, fmt.Errorf("csv: la cabecera no incluye %s", importer.ColNumeroFactura)
	}

	var out []importer.Registro
	for fila := 2; ; fila++ {
		valores, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: fila %d: %w", fila, err)
		}
		campos := make(map[string]string, len(cabecera))
		for i, col := range cabecera {
			if i < len(valores) {
				campos[col] = valores[i]
			}
		}
		out = append(out, importer.Registro{Fila: fila, Campos: campos})
	}
	return out, nil
}

// detectarSeparador mira la primera línea sin consumirla.
func detectarSeparador(br *bufio.Reader) (rune, error) {
	primera, err := br.Peek(br.Size())
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return 0, fmt.Errorf("csv: %w", err)
	}
	if i := bytes.IndexByte(primera, '\n'); i >= 0 {
		primera = primera[:i]
	}
	if bytes.Count(primera, []byte{';'}) > bytes.Count(primera, []byte{','}) {
		return ';', nil
	}
	return ',', nil
}

package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
)

var _ importer.Lector = JSONReader{}

// JSONReader lee un array JSON de objetos con las mismas claves que el listado de la
// API. Es el formato de los fixtures de la CLI.
type JSONReader struct{}

// Leer devuelve un registro por objeto; Fila es su posición (desde 1).
func (JSONReader) Leer(r io.Reader, opts importer.Opciones) ([]importer.Registro, error) {
	dec, err := decodificador(r, opts.Charset)
	if err != nil {
		return nil, err
	}
	jd := json.NewDecoder(dec)
	jd.UseNumber()
	var objetos []map[string]any
	if err := jd.Decode(&objetos); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}

	out := make([]importer.Registro, 0, len(objetos))
	for i, obj := range objetos {
		campos := make(map[string]string, len(obj))
		for k, v := range obj {
			campos[k] = aTexto(v)
		}
		out = append(out, importer.Registro{Fila: i + 1, Campos: campos})
	}
	return out, nil
}

func aTexto(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

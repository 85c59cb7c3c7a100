package fechas

import (
	"fmt"
	"strings"
	"time"
)

// layouts de marca de tiempo aceptados, en orden de prueba. time.Parse admite
// segundos fraccionarios tras el campo de segundos aunque el layout no los declare.
// Los layouts sin huso se interpretan en UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	LayoutFecha,
}

// ParseTimestamp interpreta una marca de tiempo ISO-8601 con huso horario.
// Un sufijo literal "Z" se normaliza a "+00:00" antes de interpretar, de forma que
// el mismo valor produce el mismo instante en todas las pruebas.
func ParseTimestamp(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("marca de tiempo vacía")
	}
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("marca de tiempo inválida: %q", raw)
}

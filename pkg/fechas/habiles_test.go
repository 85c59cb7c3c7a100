package fechas_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

func fecha(s string) *time.Time {
	t, err := time.Parse(fechas.LayoutFecha, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDiasHabiles(t *testing.T) {
	casos := []struct {
		nombre      string
		inicio, fin string
		esperado    int
	}{
		{"lunes a viernes", "2025-04-07", "2025-04-11", 5},
		{"fin de semana", "2025-04-12", "2025-04-13", 0},
		{"mismo día laborable", "2025-04-09", "2025-04-09", 1},
		{"mismo día sábado", "2025-04-12", "2025-04-12", 0},
		{"dos semanas completas", "2025-04-07", "2025-04-20", 10},
		{"de viernes a lunes", "2025-04-11", "2025-04-14", 2},
		{"invertido", "2025-04-11", "2025-04-07", 0},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			n, ok := fechas.DiasHabiles(fecha(c.inicio), fecha(c.fin))
			assert.True(t, ok)
			assert.Equal(t, c.esperado, n)
		})
	}
}

func TestDiasHabiles_SinFecha(t *testing.T) {
	_, ok := fechas.DiasHabiles(nil, fecha("2025-04-07"))
	assert.False(t, ok)
	_, ok = fechas.DiasHabiles(fecha("2025-04-07"), nil)
	assert.False(t, ok)
}

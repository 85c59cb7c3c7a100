package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
)

func electronica(id, presentacion, registro string) *entity.Invoice {
	return conFechas(&entity.Invoice{ID: id, EsElectronica: true}, presentacion, registro)
}

func TestRevisarTiemposAnotacion_Estadisticas(t *testing.T) {
	facturas := []*entity.Invoice{
		electronica("1", "2025-01-01T10:00:00Z", "2025-01-01T10:30:00Z"),
		electronica("2", "2025-01-01T10:00:00+00:00", "2025-01-01T11:30:00+00:00"),
		electronica("3", "2025-01-01T10:00:00Z", "2025-01-01T10:00:30Z"),
	}

	inf := audit.RevisarTiemposAnotacion(facturas, rangoEnero(t))

	assert.Equal(t, 3, inf.TotalAnalizadas)
	assert.Equal(t, []float64{30, 90, 0.5}, inf.Detalle)
	require.NotNil(t, inf.Tiempos.Promedio)
	assert.InDelta(t, 40.1666, *inf.Tiempos.Promedio, 0.001)
	assert.Equal(t, 0.5, *inf.Tiempos.Minimo)
	assert.Equal(t, 90.0, *inf.Tiempos.Maximo)
	assert.Empty(t, inf.SinFechas)
}

func TestRevisarTiemposAnotacion_SinMuestrasEsIndefinido(t *testing.T) {
	facturas := []*entity.Invoice{
		electronica("1", "", "2025-01-01T10:30:00Z"),
		electronica("2", "2025-01-01T10:00:00Z", ""),
		electronica("3", "ayer", "2025-01-01T10:30:00Z"),
	}

	inf := audit.RevisarTiemposAnotacion(facturas, rangoEnero(t))

	assert.Nil(t, inf.Tiempos.Promedio)
	assert.Nil(t, inf.Tiempos.Minimo)
	assert.Nil(t, inf.Tiempos.Maximo)
	assert.Equal(t, []string{"1", "2", "3"}, inf.SinFechas)
	assert.Empty(t, inf.Detalle)
}

func TestRevisarTiemposAnotacion_NegativoEsAnomalia(t *testing.T) {
	facturas := []*entity.Invoice{
		electronica("1", "2025-01-01T10:00:00Z", "2025-01-01T09:00:00Z"),
		electronica("2", "2025-01-01T10:00:00Z", "2025-01-01T10:10:00Z"),
	}

	inf := audit.RevisarTiemposAnotacion(facturas, rangoEnero(t))

	require.Len(t, inf.Anomalias, 1)
	assert.Equal(t, "1", inf.Anomalias[0].ID)
	assert.Equal(t, -60.0, inf.Anomalias[0].Minutos)
	assert.Equal(t, []float64{10}, inf.Detalle)
	assert.Equal(t, 10.0, *inf.Tiempos.Minimo)
}

func TestRevisarTiemposAnotacion_EvolucionMensual(t *testing.T) {
	facturas := []*entity.Invoice{
		electronica("1", "2025-02-01T10:00:00Z", "2025-02-01T11:00:00Z"),
		electronica("2", "2025-01-01T10:00:00Z", "2025-01-01T10:20:00Z"),
		electronica("3", "2025-01-05T10:00:00Z", "2025-01-05T10:40:00Z"),
	}

	inf := audit.RevisarTiemposAnotacion(facturas, rangoEnero(t))

	require.Len(t, inf.PorMes, 2)
	assert.Equal(t, "2025-01", inf.PorMes[0].Mes)
	assert.Equal(t, 2, inf.PorMes[0].Facturas)
	assert.Equal(t, 30.0, *inf.PorMes[0].Promedio)
	assert.Equal(t, "2025-02", inf.PorMes[1].Mes)
	assert.Equal(t, 60.0, *inf.PorMes[1].Maximo)
}

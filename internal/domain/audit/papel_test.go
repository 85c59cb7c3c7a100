package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

func rangoEnero(t *testing.T) fechas.Rango {
	t.Helper()
	r, err := fechas.ValidarRango(fechas.NewRangoParams("2025-01-01", "2025-03-31"), true)
	require.NoError(t, err)
	return r
}

func TestRevisarFacturasPapel_FueraDePlazo(t *testing.T) {
	facturas := []*entity.Invoice{
		conFechas(papel("1", "B1", "F1", "2024-12-20"), "2025-01-01", "2025-02-05"),
		conFechas(papel("2", "B1", "F2", "2024-12-20"), "2025-01-01", "2025-01-25"),
		conFechas(papel("3", "B1", "F3", "2024-12-20"), "2025-01-01T23:00:00Z", "2025-01-31T01:00:00Z"),
	}

	inf := audit.RevisarFacturasPapel(facturas, rangoEnero(t))

	assert.Equal(t, 3, inf.TotalAnalizadas)
	require.Len(t, inf.FueraDePlazo, 1)
	fuera := inf.FueraDePlazo[0]
	assert.Equal(t, "1", fuera.ID)
	assert.Equal(t, 35, fuera.DiasTranscurridos)
	assert.Equal(t, 26, fuera.DiasHabiles)
	assert.Equal(t, "2025-01-01", fuera.FechaPresentacion)
	assert.Equal(t, "2025-02-05", fuera.FechaRegistroRCF)
}

func TestRevisarFacturasPapel_FechasAusentes(t *testing.T) {
	facturas := []*entity.Invoice{
		papel("1", "B1", "F1", "2025-01-01"),
		conFechas(papel("2", "B1", "F2", "2025-01-01"), "", "2025-01-10"),
		conFechas(papel("3", "B1", "F3", "2025-01-01"), "2025-01-02", ""),
		conFechas(papel("4", "B1", "F4", "2025-01-01"), "   ", "2025-01-10"),
	}

	inf := audit.RevisarFacturasPapel(facturas, rangoEnero(t))

	assert.Equal(t, []string{"1", "2", "4"}, inf.SinFechaPresentacion,
		"sin ninguna fecha se clasifica solo como sin presentación")
	assert.Equal(t, []string{"3"}, inf.SinFechaRegistroRCF)
	assert.Empty(t, inf.FueraDePlazo)
}

func TestRevisarFacturasPapel_ErrorDeFechaNoAborta(t *testing.T) {
	facturas := []*entity.Invoice{
		conFechas(papel("1", "B1", "F1", "2025-01-01"), "no-es-fecha", "2025-02-05"),
		conFechas(papel("2", "B1", "F2", "2025-01-01"), "2025-01-01", "2025-03-01"),
	}

	inf := audit.RevisarFacturasPapel(facturas, rangoEnero(t))

	require.Len(t, inf.ErroresProcesamiento, 1)
	assert.Equal(t, "1", inf.ErroresProcesamiento[0].ID)
	assert.Equal(t, "no-es-fecha", inf.ErroresProcesamiento[0].FechaPresentacion)
	assert.Contains(t, inf.ErroresProcesamiento[0].Error, "fecha_presentacion_registro")
	require.Len(t, inf.FueraDePlazo, 1, "la factura válida se evalúa igualmente")
	assert.Equal(t, "2", inf.FueraDePlazo[0].ID)
}

func TestRevisarFacturasPapel_IDRepetidoSeEvaluaUnaVez(t *testing.T) {
	f := conFechas(papel("7", "B1", "F1", "2025-01-01"), "2025-01-01", "2025-03-01")
	inf := audit.RevisarFacturasPapel([]*entity.Invoice{f, f}, rangoEnero(t))

	assert.Equal(t, 2, inf.TotalAnalizadas)
	assert.Len(t, inf.FueraDePlazo, 1)
	assert.Empty(t, inf.DuplicadasPotenciales, "el mismo id no es un duplicado de sí mismo")
}

func TestRevisarFacturasPapel_Duplicados(t *testing.T) {
	facturas := []*entity.Invoice{
		papel("1", "B1", "F1", "2025-01-01"),
		papel("2", "b1", "F1", "2025-01-01"),
		papel("3", "B2", "F9", "2025-01-01"),
	}

	inf := audit.RevisarFacturasPapel(facturas, rangoEnero(t))

	require.Len(t, inf.DuplicadasPotenciales, 2)
	assert.Equal(t, "1", inf.DuplicadasPotenciales[0].ID)
	assert.Equal(t, "2", inf.DuplicadasPotenciales[1].ID)
	for _, d := range inf.DuplicadasPotenciales {
		assert.Equal(t, []string{"1", "2"}, d.IDsDuplicadosAsociados)
	}
}

func TestRevisarFacturasPapel_VerificacionManualSiempreActiva(t *testing.T) {
	inf := audit.RevisarFacturasPapel(nil, rangoEnero(t))
	assert.True(t, inf.VerificacionManual.Completitud)
	assert.True(t, inf.VerificacionManual.Contenido)
	assert.NotNil(t, inf.FueraDePlazo)
	assert.NotNil(t, inf.DuplicadasPotenciales)
}

func TestRevisarFacturasPapel_Idempotente(t *testing.T) {
	facturas := []*entity.Invoice{
		conFechas(papel("1", "B1", "F1", "2025-01-01"), "2025-01-01", "2025-02-05"),
		papel("2", "b1 ", " F1", "2025-01-01"),
		conFechas(papel("3", "B2", "F9", "2025-01-01"), "x", "y"),
	}
	rango := rangoEnero(t)
	assert.Equal(t, audit.RevisarFacturasPapel(facturas, rango), audit.RevisarFacturasPapel(facturas, rango))
}

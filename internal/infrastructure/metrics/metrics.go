// Package metrics expone métricas Prometheus de las pruebas de auditoría.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
)

var _ audit.Recorder = (*Metrics)(nil)

// Metrics contadores e histogramas de auditoría.
type Metrics struct {
	Auditorias *prometheus.CounterVec
	Hallazgos  *prometheus.CounterVec
	Duracion   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registra las métricas en reg. Con reg nil se usa un registro propio, útil en tests
// y para no colisionar con el registro global.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		Auditorias: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rcf_auditorias_total",
			Help: "Ejecuciones de pruebas de auditoría por prueba y resultado",
		}, []string{"prueba", "resultado"}), // resultado: ok, cache, parametros, no_disponible

		Hallazgos: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rcf_hallazgos_total",
			Help: "Hallazgos reportados por prueba y tipo",
		}, []string{"prueba", "tipo"}),

		Duracion: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rcf_auditoria_duracion_segundos",
			Help:    "Duración de cada prueba incluida la consulta al almacén",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"prueba"}),

		gatherer: reg,
	}
}

// ObserveAudit registra una ejecución.
func (m *Metrics) ObserveAudit(prueba, resultado string, d time.Duration) {
	if m == nil {
		return
	}
	m.Auditorias.WithLabelValues(prueba, resultado).Inc()
	m.Duracion.WithLabelValues(prueba).Observe(d.Seconds())
}

// AddFindings suma n hallazgos del tipo indicado.
func (m *Metrics) AddFindings(prueba, tipo string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Hallazgos.WithLabelValues(prueba, tipo).Add(float64(n))
}

// Handler sirve las métricas en formato de exposición Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

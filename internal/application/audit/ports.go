package audit

import (
	"context"
	"time"
)

// ReportCache almacena informes ya calculados. Las implementaciones versionan las
// claves y Invalidate descarta todo lo anterior (se llama tras cada importación).
type ReportCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// Recorder registra métricas de ejecución de las pruebas.
type Recorder interface {
	ObserveAudit(prueba, resultado string, duracion time.Duration)
	AddFindings(prueba, tipo string, n int)
}

// Resultados de una ejecución, usados como etiqueta de métricas.
const (
	ResultadoOK           = "ok"
	ResultadoParametros   = "parametros"
	ResultadoNoDisponible = "no_disponible"
	ResultadoCache        = "cache"
)

type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Invalidate(context.Context) error                      { return nil }

type noopRecorder struct{}

func (noopRecorder) ObserveAudit(string, string, time.Duration) {}
func (noopRecorder) AddFindings(string, string, int)            {}

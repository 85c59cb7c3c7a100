package dto

// Periodo rango analizado; null en los extremos cuando no se filtró.
type Periodo struct {
	Inicio *string `json:"inicio"`
	Fin    *string `json:"fin"`
}

// ── V.1 Facturas en papel ─────────────────────────────────────────────────────

// InformePapelDTO respuesta de POST /api/auditar/v1/papel.
type InformePapelDTO struct {
	PeriodoAnalizado      Periodo                 `json:"periodo_analizado"`
	TotalAnalizadas       int                     `json:"total_facturas_papel_analizadas"`
	FueraDePlazo          []FueraPlazoDTO         `json:"v1_2_fuera_plazo_30_dias"`
	SinFechaPresentacion  []string                `json:"v1_2_sin_fecha_presentacion"`
	SinFechaRegistroRCF   []string                `json:"v1_2_sin_fecha_registro_rcf"`
	DuplicadasPotenciales []DuplicadaDTO          `json:"v1_4_duplicadas_potenciales"`
	VerificacionManual    VerificacionManualDTO   `json:"requiere_verificacion_manual"`
	ErroresFechas         []ErrorProcesamientoDTO `json:"errores_procesamiento_fechas"`
}

// FueraPlazoDTO factura anotada fuera del plazo de 30 días naturales.
type FueraPlazoDTO struct {
	ID                string `json:"id"`
	NumeroFactura     string `json:"numero_factura"`
	ProveedorNIF      string `json:"proveedor_nif"`
	FechaPresentacion string `json:"fecha_presentacion"`
	FechaRegistroRCF  string `json:"fecha_registro_rcf"`
	DiasTranscurridos int    `json:"dias_transcurridos"`
	DiasHabiles       int    `json:"dias_habiles"` // informativo; el plazo se mide en días naturales
}

// DuplicadaDTO factura que comparte NIF, número y fecha con otra.
type DuplicadaDTO struct {
	ID                     string   `json:"id"`
	NumeroFactura          string   `json:"numero_factura"`
	ProveedorNIF           string   `json:"proveedor_nif"`
	FechaFactura           string   `json:"fecha_factura"`
	FechaRegistroRCF       *string  `json:"fecha_registro_rcf"`
	IDsDuplicadosAsociados []string `json:"ids_duplicados_asociados"`
}

// VerificacionManualDTO pruebas no automatizables (siempre true).
type VerificacionManualDTO struct {
	Completitud bool `json:"v1_1_completitud"`
	Contenido   bool `json:"v1_3_contenido"`
}

// ErrorProcesamientoDTO factura cuyas fechas no se pudieron interpretar.
type ErrorProcesamientoDTO struct {
	ID                string `json:"id"`
	Error             string `json:"error"`
	FechaPresentacion string `json:"fecha_presentacion"`
	FechaRegistroRCF  string `json:"fecha_registro_rcf"`
}

// ── V.2 Anotación en RCF ──────────────────────────────────────────────────────

// InformeAnotacionDTO respuesta de POST /api/auditar/v2/anotacion.
type InformeAnotacionDTO struct {
	PeriodoAnalizado Periodo             `json:"periodo_analizado"`
	TotalAnalizadas  int                 `json:"total_facturas_electronicas_analizadas"`
	Tiempos          TiemposAnotacionDTO `json:"tiempos_anotacion"`
	SinFechas        []string            `json:"facturas_sin_fechas"`
	Anomalias        []TiempoNegativoDTO `json:"anomalias_tiempo_negativo"`
	EvolucionMensual []TiemposMesDTO     `json:"evolucion_mensual"`
}

// TiemposAnotacionDTO estadísticas en minutos; null si no hay muestras.
type TiemposAnotacionDTO struct {
	Promedio *float64  `json:"promedio_minutos"`
	Minimo   *float64  `json:"minimo_minutos"`
	Maximo   *float64  `json:"maximo_minutos"`
	Detalle  []float64 `json:"detalle"`
}

// TiempoNegativoDTO factura anotada antes de su presentación.
type TiempoNegativoDTO struct {
	ID      string  `json:"id"`
	Minutos float64 `json:"minutos"`
}

// TiemposMesDTO agregados de un mes (YYYY-MM).
type TiemposMesDTO struct {
	Mes      string   `json:"mes"`
	Facturas int      `json:"facturas"`
	Promedio *float64 `json:"promedio_minutos"`
	Minimo   *float64 `json:"minimo_minutos"`
	Maximo   *float64 `json:"maximo_minutos"`
}

// ── V.3 Validaciones de contenido ─────────────────────────────────────────────

// InformeContenidoDTO respuesta de POST /api/auditar/v3/validaciones.
type InformeContenidoDTO struct {
	PeriodoAnalizado Periodo             `json:"periodo_analizado"`
	TotalValidadas   int                 `json:"total_facturas_validadas"`
	ConErrores       []FacturaErroresDTO `json:"facturas_con_errores"`
}

// FacturaErroresDTO factura con errores de validación.
type FacturaErroresDTO struct {
	ID            string   `json:"id"`
	NumeroFactura string   `json:"numero_factura"`
	Errores       []string `json:"errores"`
}

// ── V.4 Tramitación ───────────────────────────────────────────────────────────

// InformeTramitacionDTO respuesta de POST /api/auditar/v4/tramitacion.
type InformeTramitacionDTO struct {
	PeriodoAnalizado    Periodo               `json:"periodo_analizado"`
	TotalAnalizadas     int                   `json:"total_facturas_tramitacion"`
	EstadoIncorrecto    []EstadoIncorrectoDTO `json:"facturas_con_estado_incorrecto"`
	DistribucionEstados map[string]int        `json:"distribucion_estados"`
}

// EstadoIncorrectoDTO factura con estado fuera del conjunto admitido.
type EstadoIncorrectoDTO struct {
	ID            string `json:"id"`
	NumeroFactura string `json:"numero_factura"`
	Estado        string `json:"estado"`
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// ResumenAuditoriaDTO respuesta de POST /api/auditar/resumen: cifras principales de
// las cuatro pruebas sobre el mismo período.
type ResumenAuditoriaDTO struct {
	PeriodoAnalizado         Periodo        `json:"periodo_analizado"`
	FacturasPapel            int            `json:"facturas_papel"`
	FacturasElectronicas     int            `json:"facturas_electronicas"`
	PapelFueraDePlazo        int            `json:"papel_fuera_de_plazo"`
	PapelDuplicadas          int            `json:"papel_duplicadas_potenciales"`
	TiempoMedioAnotacion     *float64       `json:"tiempo_medio_anotacion_minutos"`
	FacturasConErrores       int            `json:"facturas_con_errores_contenido"`
	FacturasEstadoIncorrecto int            `json:"facturas_con_estado_incorrecto"`
	DistribucionEstados      map[string]int `json:"distribucion_estados"`
}

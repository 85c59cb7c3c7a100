package audit

import (
	"fmt"
	"time"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// PlazoMaximoDias plazo máximo, en días naturales, entre la presentación de una
// factura en papel y su anotación en el RCF.
const PlazoMaximoDias = 30

// InformePapel resultado de la prueba V.1 sobre facturas en papel.
type InformePapel struct {
	Rango                 fechas.Rango
	TotalAnalizadas       int
	FueraDePlazo          []FacturaFueraPlazo
	SinFechaPresentacion  []string
	SinFechaRegistroRCF   []string
	DuplicadasPotenciales []FacturaDuplicada
	VerificacionManual    VerificacionManual
	ErroresProcesamiento  []ErrorFechas
}

// FacturaFueraPlazo factura anotada más de PlazoMaximoDias después de su presentación.
type FacturaFueraPlazo struct {
	ID                string
	NumeroFactura     string
	ProveedorNIF      string
	FechaPresentacion string
	FechaRegistroRCF  string
	DiasTranscurridos int
	DiasHabiles       int
}

// VerificacionManual pruebas que no se pueden automatizar con los datos disponibles.
// Siempre son true: es una limitación permanente, no un fallo.
type VerificacionManual struct {
	Completitud bool // V.1.1
	Contenido   bool // V.1.3
}

// ErrorFechas factura cuyas fechas no se pudieron interpretar.
type ErrorFechas struct {
	ID                string
	Error             string
	FechaPresentacion string
	FechaRegistroRCF  string
}

// RevisarFacturasPapel ejecuta la prueba V.1: anotación en plazo (V.1.2) y duplicidad
// (V.1.4) sobre facturas en papel ya filtradas por fecha de registro en el RCF.
// Una factura con fechas mal formadas se aísla en ErroresProcesamiento; nunca aborta.
func RevisarFacturasPapel(facturas []*entity.Invoice, rango fechas.Rango) InformePapel {
	inf := InformePapel{
		Rango:                rango,
		TotalAnalizadas:      len(facturas),
		FueraDePlazo:         []FacturaFueraPlazo{},
		SinFechaPresentacion: []string{},
		SinFechaRegistroRCF:  []string{},
		VerificacionManual:   VerificacionManual{Completitud: true, Contenido: true},
		ErroresProcesamiento: []ErrorFechas{},
	}

	procesadas := make(map[string]struct{}, len(facturas))
	for _, f := range facturas {
		if f.ID == "" {
			continue
		}
		if _, ok := procesadas[f.ID]; ok {
			continue
		}
		procesadas[f.ID] = struct{}{}

		if !entity.TieneDato(f.FechaPresentacionRegistro) {
			inf.SinFechaPresentacion = append(inf.SinFechaPresentacion, f.ID)
			continue
		}
		if !entity.TieneDato(f.FechaRegistroRCF) {
			inf.SinFechaRegistroRCF = append(inf.SinFechaRegistroRCF, f.ID)
			continue
		}

		presentacionStr, registroStr := *f.FechaPresentacionRegistro, *f.FechaRegistroRCF
		presentacion, registro, err := parsearPar(presentacionStr, registroStr)
		if err != nil {
			inf.ErroresProcesamiento = append(inf.ErroresProcesamiento, ErrorFechas{
				ID:                f.ID,
				Error:             err.Error(),
				FechaPresentacion: presentacionStr,
				FechaRegistroRCF:  registroStr,
			})
			continue
		}

		desde, hasta := fechas.FechaCivil(presentacion), fechas.FechaCivil(registro)
		dias := int(hasta.Sub(desde).Hours() / 24)
		if dias <= PlazoMaximoDias {
			continue
		}
		habiles, _ := fechas.DiasHabiles(&desde, &hasta)
		inf.FueraDePlazo = append(inf.FueraDePlazo, FacturaFueraPlazo{
			ID:                f.ID,
			NumeroFactura:     f.NumeroFactura,
			ProveedorNIF:      f.ProveedorNIF,
			FechaPresentacion: presentacionStr,
			FechaRegistroRCF:  registroStr,
			DiasTranscurridos: dias,
			DiasHabiles:       habiles,
		})
	}

	inf.DuplicadasPotenciales = BuscarDuplicados(facturas)
	if inf.DuplicadasPotenciales == nil {
		inf.DuplicadasPotenciales = []FacturaDuplicada{}
	}
	return inf
}

// parsearPar interpreta las dos marcas de tiempo de una factura, indicando cuál falló.
func parsearPar(presentacion, registro string) (p, r time.Time, err error) {
	p, err = fechas.ParseTimestamp(presentacion)
	if err != nil {
		return p, r, fmt.Errorf("fecha_presentacion_registro: %w", err)
	}
	r, err = fechas.ParseTimestamp(registro)
	if err != nil {
		return p, r, fmt.Errorf("fecha_registro_rcf: %w", err)
	}
	return p, r, nil
}

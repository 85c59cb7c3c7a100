// Package fechas contiene utilidades puras de fechas para la auditoría del RCF:
// validación de rangos de consulta, días hábiles y normalización de marcas de tiempo.
package fechas

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Auditoria-RCF/internal/domain"
)

// LayoutFecha formato ISO de fecha de calendario aceptado en los parámetros.
const LayoutFecha = "2006-01-02"

// Códigos de error de parámetros.
const (
	CodeMissingParameter  = "MissingParameter"
	CodeInconsistentRange = "InconsistentRange"
	CodeInvalidDateFormat = "InvalidDateFormat"
	CodeInvertedRange     = "InvertedRange"
)

// ParamError error de validación de parámetros de entrada (HTTP 400, nunca se reintenta).
type ParamError struct {
	Code    string
	Message string
}

func (e *ParamError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, domain.ErrInvalidInput).
func (e *ParamError) Unwrap() error { return domain.ErrInvalidInput }

// RangoParams parámetros crudos del cuerpo JSON. nil o "" significa ausente.
type RangoParams struct {
	FechaInicio *string `json:"fecha_inicio"`
	FechaFin    *string `json:"fecha_fin"`
}

// NewRangoParams construye parámetros a partir de strings; "" se toma como ausente.
func NewRangoParams(inicio, fin string) RangoParams {
	var p RangoParams
	if inicio != "" {
		p.FechaInicio = &inicio
	}
	if fin != "" {
		p.FechaFin = &fin
	}
	return p
}

// Rango par validado de fechas de calendario (inclusivo). Ambos nil = sin filtro.
type Rango struct {
	Inicio *time.Time
	Fin    *time.Time
}

// Abierto indica que el rango no filtra.
func (r Rango) Abierto() bool { return r.Inicio == nil && r.Fin == nil }

// Contiene indica si la fecha de calendario de t cae dentro del rango (inclusivo).
// Un rango abierto contiene cualquier fecha.
func (r Rango) Contiene(t time.Time) bool {
	d := FechaCivil(t)
	if r.Inicio != nil && d.Before(*r.Inicio) {
		return false
	}
	if r.Fin != nil && d.After(*r.Fin) {
		return false
	}
	return true
}

// InicioStr devuelve el inicio como YYYY-MM-DD o "" si es abierto.
func (r Rango) InicioStr() string { return formatPtr(r.Inicio) }

// FinStr devuelve el fin como YYYY-MM-DD o "" si es abierto.
func (r Rango) FinStr() string { return formatPtr(r.Fin) }

func formatPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(LayoutFecha)
}

// ValidarRango valida el par fecha_inicio/fecha_fin.
//
// Con requerido=true ambas fechas son obligatorias. Con requerido=false se admite
// el rango completamente abierto o completamente acotado; uno parcial se rechaza.
func ValidarRango(p RangoParams, requerido bool) (Rango, error) {
	inicio, fin := valor(p.FechaInicio), valor(p.FechaFin)

	if requerido {
		if inicio == "" || fin == "" {
			return Rango{}, &ParamError{
				Code:    CodeMissingParameter,
				Message: "Faltan parámetros 'fecha_inicio' o 'fecha_fin' en el cuerpo JSON",
			}
		}
	} else {
		switch {
		case inicio == "" && fin == "":
			return Rango{}, nil
		case fin == "":
			return Rango{}, &ParamError{
				Code:    CodeInconsistentRange,
				Message: "Si se provee 'fecha_inicio', también se debe proveer 'fecha_fin'",
			}
		case inicio == "":
			return Rango{}, &ParamError{
				Code:    CodeInconsistentRange,
				Message: "Si se provee 'fecha_fin', también se debe proveer 'fecha_inicio'",
			}
		}
	}

	desde, err := ParseFecha(inicio)
	if err != nil {
		return Rango{}, err
	}
	hasta, err := ParseFecha(fin)
	if err != nil {
		return Rango{}, err
	}
	if desde.After(hasta) {
		return Rango{}, &ParamError{
			Code:    CodeInvertedRange,
			Message: "La fecha de inicio no puede ser posterior a la fecha de fin",
		}
	}
	return Rango{Inicio: &desde, Fin: &hasta}, nil
}

// ParseFecha interpreta una fecha estricta YYYY-MM-DD (medianoche UTC).
func ParseFecha(s string) (time.Time, error) {
	t, err := time.Parse(LayoutFecha, s)
	if err != nil {
		return time.Time{}, &ParamError{
			Code:    CodeInvalidDateFormat,
			Message: fmt.Sprintf("Formato de fecha inválido (%q). Usar YYYY-MM-DD", s),
		}
	}
	return t, nil
}

// FechaCivil trunca t a su fecha de calendario en su propio huso, expresada a medianoche UTC.
func FechaCivil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func valor(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

package audit

import (
	"sort"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// InformeAnotacion resultado de la prueba V.2: tiempos de anotación en el RCF de
// facturas electrónicas.
type InformeAnotacion struct {
	Rango           fechas.Rango
	TotalAnalizadas int
	Tiempos         Estadistica
	// Detalle minutos transcurridos por factura válida, en el orden de entrada.
	Detalle   []float64
	SinFechas []string
	Anomalias []TiempoNegativo
	PorMes    []EstadisticaMes
}

// Estadistica agregados en minutos; nil cuando no hay muestras.
type Estadistica struct {
	Promedio *float64
	Minimo   *float64
	Maximo   *float64
}

// EstadisticaMes agregados de las anotaciones de un mes (YYYY-MM de la fecha de registro).
type EstadisticaMes struct {
	Mes      string
	Facturas int
	Estadistica
}

// TiempoNegativo factura anotada en el RCF antes de su presentación. Se reporta como
// anomalía de datos y no entra en los agregados.
type TiempoNegativo struct {
	ID      string
	Minutos float64
}

// RevisarTiemposAnotacion ejecuta la prueba V.2 sobre facturas electrónicas ya
// filtradas por fecha de registro en el RCF.
func RevisarTiemposAnotacion(facturas []*entity.Invoice, rango fechas.Rango) InformeAnotacion {
	inf := InformeAnotacion{
		Rango:           rango,
		TotalAnalizadas: len(facturas),
		Detalle:         []float64{},
		SinFechas:       []string{},
		Anomalias:       []TiempoNegativo{},
		PorMes:          []EstadisticaMes{},
	}

	porMes := make(map[string][]float64)
	for _, f := range facturas {
		if !entity.TieneDato(f.FechaPresentacionRegistro) || !entity.TieneDato(f.FechaRegistroRCF) {
			inf.SinFechas = append(inf.SinFechas, f.ID)
			continue
		}
		presentacion, registro, err := parsearPar(*f.FechaPresentacionRegistro, *f.FechaRegistroRCF)
		if err != nil {
			inf.SinFechas = append(inf.SinFechas, f.ID)
			continue
		}
		minutos := registro.Sub(presentacion).Seconds() / 60
		if minutos < 0 {
			inf.Anomalias = append(inf.Anomalias, TiempoNegativo{ID: f.ID, Minutos: minutos})
			continue
		}
		inf.Detalle = append(inf.Detalle, minutos)
		mes := registro.Format("2006-01")
		porMes[mes] = append(porMes[mes], minutos)
	}

	inf.Tiempos = calcularEstadistica(inf.Detalle)

	meses := make([]string, 0, len(porMes))
	for m := range porMes {
		meses = append(meses, m)
	}
	sort.Strings(meses)
	for _, m := range meses {
		inf.PorMes = append(inf.PorMes, EstadisticaMes{
			Mes:         m,
			Facturas:    len(porMes[m]),
			Estadistica: calcularEstadistica(porMes[m]),
		})
	}
	return inf
}

func calcularEstadistica(muestras []float64) Estadistica {
	if len(muestras) == 0 {
		return Estadistica{}
	}
	suma, minimo, maximo := 0.0, muestras[0], muestras[0]
	for _, v := range muestras {
		suma += v
		if v < minimo {
			minimo = v
		}
		if v > maximo {
			maximo = v
		}
	}
	promedio := suma / float64(len(muestras))
	return Estadistica{Promedio: &promedio, Minimo: &minimo, Maximo: &maximo}
}

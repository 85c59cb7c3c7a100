package audit

import (
	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	domaudit "github.com/jhoicas/Auditoria-RCF/internal/domain/audit"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

func toPeriodo(r fechas.Rango) dto.Periodo {
	var p dto.Periodo
	if r.Inicio != nil {
		s := r.InicioStr()
		p.Inicio = &s
	}
	if r.Fin != nil {
		s := r.FinStr()
		p.Fin = &s
	}
	return p
}

func toInformePapelDTO(inf domaudit.InformePapel) dto.InformePapelDTO {
	out := dto.InformePapelDTO{
		PeriodoAnalizado:      toPeriodo(inf.Rango),
		TotalAnalizadas:       inf.TotalAnalizadas,
		FueraDePlazo:          make([]dto.FueraPlazoDTO, 0, len(inf.FueraDePlazo)),
		SinFechaPresentacion:  inf.SinFechaPresentacion,
		SinFechaRegistroRCF:   inf.SinFechaRegistroRCF,
		DuplicadasPotenciales: make([]dto.DuplicadaDTO, 0, len(inf.DuplicadasPotenciales)),
		VerificacionManual: dto.VerificacionManualDTO{
			Completitud: inf.VerificacionManual.Completitud,
			Contenido:   inf.VerificacionManual.Contenido,
		},
		ErroresFechas: make([]dto.ErrorProcesamientoDTO, 0, len(inf.ErroresProcesamiento)),
	}
	for _, f := range inf.FueraDePlazo {
		out.FueraDePlazo = append(out.FueraDePlazo, dto.FueraPlazoDTO{
			ID:                f.ID,
			NumeroFactura:     f.NumeroFactura,
			ProveedorNIF:      f.ProveedorNIF,
			FechaPresentacion: f.FechaPresentacion,
			FechaRegistroRCF:  f.FechaRegistroRCF,
			DiasTranscurridos: f.DiasTranscurridos,
			DiasHabiles:       f.DiasHabiles,
		})
	}
	for _, d := range inf.DuplicadasPotenciales {
		out.DuplicadasPotenciales = append(out.DuplicadasPotenciales, dto.DuplicadaDTO{
			ID:                     d.ID,
			NumeroFactura:          d.NumeroFactura,
			ProveedorNIF:           d.ProveedorNIF,
			FechaFactura:           d.FechaFactura,
			FechaRegistroRCF:       d.FechaRegistroRCF,
			IDsDuplicadosAsociados: d.IDsDuplicadosAsociados,
		})
	}
	for _, e := range inf.ErroresProcesamiento {
		out.ErroresFechas = append(out.ErroresFechas, dto.ErrorProcesamientoDTO{
			ID:                e.ID,
			Error:             e.Error,
			FechaPresentacion: e.FechaPresentacion,
			FechaRegistroRCF:  e.FechaRegistroRCF,
		})
	}
	return out
}

func toInformeAnotacionDTO(inf domaudit.InformeAnotacion) dto.InformeAnotacionDTO {
	out := dto.InformeAnotacionDTO{
		PeriodoAnalizado: toPeriodo(inf.Rango),
		TotalAnalizadas:  inf.TotalAnalizadas,
		Tiempos: dto.TiemposAnotacionDTO{
			Promedio: inf.Tiempos.Promedio,
			Minimo:   inf.Tiempos.Minimo,
			Maximo:   inf.Tiempos.Maximo,
			Detalle:  inf.Detalle,
		},
		SinFechas:        inf.SinFechas,
		Anomalias:        make([]dto.TiempoNegativoDTO, 0, len(inf.Anomalias)),
		EvolucionMensual: make([]dto.TiemposMesDTO, 0, len(inf.PorMes)),
	}
	for _, a := range inf.Anomalias {
		out.Anomalias = append(out.Anomalias, dto.TiempoNegativoDTO{ID: a.ID, Minutos: a.Minutos})
	}
	for _, m := range inf.PorMes {
		out.EvolucionMensual = append(out.EvolucionMensual, dto.TiemposMesDTO{
			Mes:      m.Mes,
			Facturas: m.Facturas,
			Promedio: m.Promedio,
			Minimo:   m.Minimo,
			Maximo:   m.Maximo,
		})
	}
	return out
}

func toInformeContenidoDTO(inf domaudit.InformeContenido, r fechas.Rango) dto.InformeContenidoDTO {
	out := dto.InformeContenidoDTO{
		PeriodoAnalizado: toPeriodo(r),
		TotalValidadas:   inf.TotalValidadas,
		ConErrores:       make([]dto.FacturaErroresDTO, 0, len(inf.ConErrores)),
	}
	for _, f := range inf.ConErrores {
		out.ConErrores = append(out.ConErrores, dto.FacturaErroresDTO{
			ID:            f.ID,
			NumeroFactura: f.NumeroFactura,
			Errores:       f.Errores,
		})
	}
	return out
}

func toInformeTramitacionDTO(inf domaudit.InformeTramitacion, r fechas.Rango) dto.InformeTramitacionDTO {
	out := dto.InformeTramitacionDTO{
		PeriodoAnalizado:    toPeriodo(r),
		TotalAnalizadas:     inf.TotalAnalizadas,
		EstadoIncorrecto:    make([]dto.EstadoIncorrectoDTO, 0, len(inf.EstadoIncorrecto)),
		DistribucionEstados: inf.DistribucionEstados,
	}
	for _, f := range inf.EstadoIncorrecto {
		out.EstadoIncorrecto = append(out.EstadoIncorrecto, dto.EstadoIncorrectoDTO{
			ID:            f.ID,
			NumeroFactura: f.NumeroFactura,
			Estado:        f.Estado,
		})
	}
	return out
}

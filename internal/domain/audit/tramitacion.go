package audit

import "github.com/jhoicas/Auditoria-RCF/internal/domain/entity"

// EstadosValidos conjunto cerrado de estados de tramitación admitidos.
var EstadosValidos = map[string]struct{}{
	entity.EstadoRegistrada:        {},
	entity.EstadoRegistradaRCF:     {},
	entity.EstadoVerificadaRCF:     {},
	entity.EstadoRecibidaEnDestino: {},
	entity.EstadoConformada:        {},
	entity.EstadoContabilizada:     {},
	entity.EstadoPagada:            {},
	entity.EstadoAnulada:           {},
	entity.EstadoRechazada:         {},
}

// InformeTramitacion resultado de la prueba V.4.
type InformeTramitacion struct {
	TotalAnalizadas     int
	EstadoIncorrecto    []FacturaEstado
	DistribucionEstados map[string]int
}

// FacturaEstado factura con un estado fuera del conjunto admitido.
type FacturaEstado struct {
	ID            string
	NumeroFactura string
	Estado        string
}

// EstadoValido indica si el estado pertenece al conjunto admitido (comparación exacta).
func EstadoValido(estado string) bool {
	_, ok := EstadosValidos[estado]
	return ok
}

// RevisarTramitacion ejecuta la prueba V.4. Un estado vacío también es incorrecto.
func RevisarTramitacion(facturas []*entity.Invoice) InformeTramitacion {
	inf := InformeTramitacion{
		TotalAnalizadas:     len(facturas),
		EstadoIncorrecto:    []FacturaEstado{},
		DistribucionEstados: make(map[string]int),
	}
	for _, f := range facturas {
		inf.DistribucionEstados[f.Estado]++
		if EstadoValido(f.Estado) {
			continue
		}
		inf.EstadoIncorrecto = append(inf.EstadoIncorrecto, FacturaEstado{
			ID:            f.ID,
			NumeroFactura: f.NumeroFactura,
			Estado:        f.Estado,
		})
	}
	return inf
}

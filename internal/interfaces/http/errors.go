package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

const (
	msgNoDisponible = "Servicio no disponible: sin conexión con la base de datos"
	msgInterno      = "Error interno del servidor"
)

// errorResponder traduce errores de aplicación a respuestas HTTP. Con detalles=true
// (fuera de producción) se incluye el error original en "details".
type errorResponder struct {
	detalles bool
}

func (r errorResponder) respond(c *fiber.Ctx, err error) error {
	var pe *fechas.ParamError
	switch {
	case errors.As(err, &pe):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: pe.Message, Code: pe.Code})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: "INVALID_INPUT"})
	case errors.Is(err, domain.ErrRetrievalUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: msgNoDisponible, Code: "RETRIEVAL_UNAVAILABLE", Details: r.detalle(err),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: msgInterno, Code: "INTERNAL", Details: r.detalle(err),
		})
	}
}

func (r errorResponder) detalle(err error) string {
	if !r.detalles {
		return ""
	}
	return err.Error()
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, pánicos recuperados,
// cuerpos demasiado grandes). Nunca expone el error interno en producción.
func ErrorHandler(detalles bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		return errorResponder{detalles: detalles}.respond(c, err)
	}
}

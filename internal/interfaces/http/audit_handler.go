package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/pkg/fechas"
)

// AuditHandler maneja los endpoints de auditoría del RCF.
type AuditHandler struct {
	uc   *audit.AuditUseCase
	errs errorResponder
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *audit.AuditUseCase, detalles bool) *AuditHandler {
	return &AuditHandler{uc: uc, errs: errorResponder{detalles: detalles}}
}

// parseRango lee {fecha_inicio, fecha_fin}. Un cuerpo vacío equivale a rango sin filtrar.
func parseRango(c *fiber.Ctx) (fechas.RangoParams, error) {
	var p fechas.RangoParams
	if len(c.Body()) == 0 {
		return p, nil
	}
	if err := c.BodyParser(&p); err != nil {
		return p, err
	}
	return p, nil
}

func (h *AuditHandler) invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "Cuerpo JSON inválido", Code: "INVALID_BODY",
	})
}

// Papel godoc
// @Summary      V.1 Facturas en papel
// @Description  Anotación en plazo (30 días naturales), duplicidad y verificación manual de facturas en papel.
// @Tags         auditoria
// @Accept       json
// @Produce      json
// @Param        body  body  fechas.RangoParams  true  "fecha_inicio y fecha_fin (YYYY-MM-DD), obligatorias"
// @Success      200   {object}  dto.InformePapelDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auditar/v1/papel [post]
func (h *AuditHandler) Papel(c *fiber.Ctx) error {
	params, err := parseRango(c)
	if err != nil {
		return h.invalidBody(c)
	}
	res, err := h.uc.Papel(c.Context(), params)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

// Anotacion godoc
// @Summary      V.2 Tiempos de anotación
// @Description  Minutos entre presentación y anotación en el RCF de facturas electrónicas.
// @Tags         auditoria
// @Accept       json
// @Produce      json
// @Param        body  body  fechas.RangoParams  true  "fecha_inicio y fecha_fin (YYYY-MM-DD), obligatorias"
// @Success      200   {object}  dto.InformeAnotacionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auditar/v2/anotacion [post]
func (h *AuditHandler) Anotacion(c *fiber.Ctx) error {
	params, err := parseRango(c)
	if err != nil {
		return h.invalidBody(c)
	}
	res, err := h.uc.Anotacion(c.Context(), params)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

// Validaciones godoc
// @Summary      V.3 Validaciones de contenido
// @Description  Coherencia aritmética de los totales de facturas electrónicas.
// @Tags         auditoria
// @Accept       json
// @Produce      json
// @Param        body  body  fechas.RangoParams  false  "rango opcional sobre fecha_factura"
// @Success      200   {object}  dto.InformeContenidoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auditar/v3/validaciones [post]
func (h *AuditHandler) Validaciones(c *fiber.Ctx) error {
	params, err := parseRango(c)
	if err != nil {
		return h.invalidBody(c)
	}
	res, err := h.uc.Validaciones(c.Context(), params)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

// Tramitacion godoc
// @Summary      V.4 Estados de tramitación
// @Tags         auditoria
// @Accept       json
// @Produce      json
// @Param        body  body  fechas.RangoParams  false  "rango opcional sobre fecha_factura"
// @Success      200   {object}  dto.InformeTramitacionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auditar/v4/tramitacion [post]
func (h *AuditHandler) Tramitacion(c *fiber.Ctx) error {
	params, err := parseRango(c)
	if err != nil {
		return h.invalidBody(c)
	}
	res, err := h.uc.Tramitacion(c.Context(), params)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

// Resumen godoc
// @Summary      Resumen de las cuatro pruebas
// @Tags         auditoria
// @Accept       json
// @Produce      json
// @Param        body  body  fechas.RangoParams  true  "fecha_inicio y fecha_fin (YYYY-MM-DD), obligatorias"
// @Success      200   {object}  dto.ResumenAuditoriaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/auditar/resumen [post]
func (h *AuditHandler) Resumen(c *fiber.Ctx) error {
	params, err := parseRango(c)
	if err != nil {
		return h.invalidBody(c)
	}
	res, err := h.uc.Resumen(c.Context(), params)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

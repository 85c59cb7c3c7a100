package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/application/usecase"
)

// InvoiceHandler maneja el listado e importación de facturas.
type InvoiceHandler struct {
	listUC   *usecase.InvoiceUseCase
	importUC *importer.ImportUseCase
	errs     errorResponder
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(listUC *usecase.InvoiceUseCase, importUC *importer.ImportUseCase, detalles bool) *InvoiceHandler {
	return &InvoiceHandler{listUC: listUC, importUC: importUC, errs: errorResponder{detalles: detalles}}
}

// List godoc
// @Summary      Listar facturas
// @Description  Facturas del RCF paginadas, ordenadas por fecha_factura descendente.
// @Tags         facturas
// @Produce      json
// @Param        page      query  int  false  "página (desde 1)"
// @Param        per_page  query  int  false  "tamaño de página (máx. 200)"
// @Success      200  {object}  dto.ListaFacturasDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "parámetros de paginación inválidos", Code: "INVALID_QUERY",
		})
	}
	res, err := h.listUC.List(c.Context(), page)
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

// Import godoc
// @Summary      Importar facturas
// @Description  Carga un fichero CSV, Facturae (XML) o JSON. Las filas inválidas se devuelven en "rechazadas".
// @Tags         facturas
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file    true   "fichero a importar"
// @Param        formato  formData  string  false  "csv | facturae | json (por defecto según la extensión)"
// @Param        charset  formData  string  false  "utf-8 | iso-8859-1 | windows-1252"
// @Success      200  {object}  dto.ResultadoImportacionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/facturas/importar [post]
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Falta el fichero 'archivo'", Code: "MISSING_FILE",
		})
	}
	formato := c.FormValue("formato")
	if formato == "" {
		formato = importer.FormatoPorExtension(fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return h.errs.respond(c, err)
	}
	defer f.Close()

	res, err := h.importUC.Importar(c.Context(), f, formato, importer.Opciones{Charset: c.FormValue("charset")})
	if err != nil {
		return h.errs.respond(c, err)
	}
	return c.JSON(res)
}

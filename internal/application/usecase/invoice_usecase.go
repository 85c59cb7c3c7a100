package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Auditoria-RCF/internal/application/dto"
	"github.com/jhoicas/Auditoria-RCF/internal/domain"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

// InvoiceUseCase consulta de facturas registradas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List lista facturas paginadas, más recientes primero.
func (uc *InvoiceUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ListaFacturasDTO, error) {
	page.DefaultPage()

	total, err := uc.repo.Contar(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalUnavailable, err)
	}
	list, err := uc.repo.Listar(ctx, page.PerPage, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrievalUnavailable, err)
	}

	items := make([]dto.FacturaDTO, 0, len(list))
	for _, f := range list {
		items = append(items, toFacturaDTO(f))
	}
	return &dto.ListaFacturasDTO{
		Data:    items,
		Page:    page.Page,
		PerPage: page.PerPage,
		Total:   total,
	}, nil
}

func toFacturaDTO(f *entity.Invoice) dto.FacturaDTO {
	return dto.FacturaDTO{
		ID:                         f.ID,
		NumeroFactura:              f.NumeroFactura,
		ProveedorNIF:               f.ProveedorNIF,
		EsElectronica:              f.EsElectronica,
		FechaFactura:               f.FechaFactura,
		FechaPresentacionRegistro:  f.FechaPresentacionRegistro,
		FechaRegistroRCF:           f.FechaRegistroRCF,
		Estado:                     f.Estado,
		TotalImporteBruto:          f.Totales.ImporteBruto,
		TotalDescuentos:            f.Totales.Descuentos,
		TotalCargos:                f.Totales.Cargos,
		TotalBrutoAntesImpuestos:   f.Totales.ImporteBrutoAntesImpuestos,
		TotalImpuestosRepercutidos: f.Totales.ImpuestosRepercutidos,
		TotalImpuestosRetenidos:    f.Totales.ImpuestosRetenidos,
		TotalFactura:               f.Totales.TotalFactura,
	}
}

package memory

import (
	"context"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/entity"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

// Run ejecuta fn sobre una vista del repositorio cuyas escrituras sólo se aplican si
// fn termina sin error.
func (r *InvoiceRepository) Run(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error {
	tx := &txRepository{InvoiceRepository: r}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.guardar(tx.pendientes)
	return nil
}

type txRepository struct {
	*InvoiceRepository
	pendientes []*entity.Invoice
}

func (t *txRepository) Guardar(ctx context.Context, facturas []*entity.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, f := range facturas {
		if f != nil {
			t.pendientes = append(t.pendientes, copia(f))
		}
	}
	return nil
}

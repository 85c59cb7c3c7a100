package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Auditoria-RCF/internal/application/importer"
	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)

// Beginner abre transacciones. Lo cumplen *pgxpool.Pool y *pgx.Conn.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// TxRunner ejecuta una importación completa dentro de una transacción: o se guardan
// todas las facturas del fichero o ninguna.
type TxRunner struct {
	db   Beginner
	opts pgx.TxOptions
}

// NewTxRunner construye el runner. Las transacciones usan READ COMMITTED.
func NewTxRunner(db Beginner) *TxRunner {
	return &TxRunner{db: db, opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
}

// Run ejecuta fn con un repositorio atado a la transacción. Si fn devuelve error se
// hace rollback; si no, commit.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.InvoiceRepository) error) error {
	err := pgx.BeginTxFunc(ctx, r.db, r.opts, func(tx pgx.Tx) error {
		return fn(NewInvoiceRepository(tx))
	})
	if err != nil {
		return fmt.Errorf("transacción de importación: %w", err)
	}
	return nil
}

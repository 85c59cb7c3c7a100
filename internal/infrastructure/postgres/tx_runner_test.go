package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Auditoria-RCF/internal/domain/repository"
)

// fakeTx sólo implementa Commit y Rollback; el resto de pgx.Tx no se usa aquí.
type fakeTx struct {
	pgx.Tx
	commits, rollbacks int
}

func (t *fakeTx) Commit(context.Context) error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx   *fakeTx
	err  error
	opts pgx.TxOptions
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	b.opts = opts
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestTxRunner_Commit(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	var recibido repository.InvoiceRepository

	err := NewTxRunner(b).Run(context.Background(), func(repo repository.InvoiceRepository) error {
		recibido = repo
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, recibido)
	assert.Equal(t, 1, b.tx.commits)
	assert.Equal(t, pgx.ReadCommitted, b.opts.IsoLevel)
}

func TestTxRunner_RollbackSiFallaFn(t *testing.T) {
	b := &fakeBeginner{tx: &fakeTx{}}
	fallo := errors.New("fila inválida")

	err := NewTxRunner(b).Run(context.Background(), func(repository.InvoiceRepository) error {
		return fallo
	})
	require.ErrorIs(t, err, fallo)
	assert.Equal(t, 0, b.tx.commits)
	assert.Equal(t, 1, b.tx.rollbacks)
}

func TestTxRunner_ErrorAlAbrir(t *testing.T) {
	b := &fakeBeginner{err: errors.New("conexión rechazada")}
	llamado := false

	err := NewTxRunner(b).Run(context.Background(), func(repository.InvoiceRepository) error {
		llamado = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, llamado)
	assert.Contains(t, err.Error(), "conexión rechazada")
}

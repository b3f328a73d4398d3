package engine

import (
	"context"

	domaineng "github.com/oficiolab/promarket-backend/internal/domain/engine"
	"github.com/oficiolab/promarket-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
)

// TxRunner provides the shared transaction boundary for engine writes.
// Every multi-statement operation (principal swap, bulk reconcile, guarded
// insert) runs its whole body inside one InTx call; any error rolls the
// entire batch back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domaineng.NewError(domaineng.CodeStorage, "engine.tx", "transaction runner has nil db", nil)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

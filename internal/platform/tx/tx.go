package tx

import (
	"context"
	"database/sql"
	"fmt"
)

// Manager wraps transactional boundaries for multi-statement operations.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type ctxKey struct{}

// SQLManager runs fn inside a database/sql transaction carried through the
// context; store adapters pick it up via From.
type SQLManager struct {
	DB *sql.DB
}

func (m SQLManager) Within(ctx context.Context, fn func(context.Context) error) error {
	txn, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, ctxKey{}, txn)); err != nil {
		_ = txn.Rollback()
		return err
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// From returns the transaction bound to ctx, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	txn, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return txn, ok
}

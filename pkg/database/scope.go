package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Scope is the transactional handle a unit of work passes down to
// repositories. Both *sqlx.DB and *sqlx.Tx satisfy it, so read-only callers
// may run against the pool directly while anything that writes should go
// through WithinScope.
type Scope interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var (
	_ Scope = (*sqlx.DB)(nil)
	_ Scope = (*sqlx.Tx)(nil)
)

// WithinScope runs fn inside one transaction: commit when fn returns nil,
// rollback (and propagate) otherwise. A panic inside fn also rolls back
// before re-panicking. Scopes do not nest; open exactly one per logical
// operation.
func WithinScope(ctx context.Context, db *sqlx.DB, fn func(scope Scope) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

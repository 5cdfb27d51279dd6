// Package repository implements sqlx data access for the record store.
// Repositories hold no connection; every method runs against the session
// scope the caller passes in, so a unit of work spanning several
// repositories shares one transaction.
package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/nour-apps/nursery-core/pkg/database"
)

// insertReturningID runs a named INSERT ... RETURNING id and scans the
// generated key. Both supported drivers understand RETURNING.
func insertReturningID(ctx context.Context, scope database.Scope, query string, arg interface{}) (int, error) {
	rows, err := sqlx.NamedQueryContext(ctx, scope, query, arg)
	if err != nil {
		return 0, err
	}
	defer rows.Close() //nolint:errcheck
	var id int
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, err
		}
	}
	return id, rows.Err()
}

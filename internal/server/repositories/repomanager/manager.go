// Package repomanager vends repository implementations for a storage
// backend and exposes the schema migration hook. The manager is the single
// seam between services and the concrete SQL dialect.
package repomanager

import (
	"context"
	"database/sql"

	"locshare/internal/dbx"
	"locshare/internal/server/repositories/accesses"
	"locshare/internal/server/repositories/events"
	"locshare/internal/server/repositories/locations"
	"locshare/internal/server/repositories/users"
)

// RepositoryManager returns repositories bound to the provided DBTX, so the
// same vendor works inside and outside transactions.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Locations(db dbx.DBTX) locations.Repository
	Accesses(db dbx.DBTX) accesses.Repository
	Events(db dbx.DBTX) events.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

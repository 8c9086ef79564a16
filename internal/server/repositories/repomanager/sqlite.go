package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"locshare/internal/dbx"
	"locshare/internal/server/migrations"
	"locshare/internal/server/repositories/accesses"
	"locshare/internal/server/repositories/events"
	"locshare/internal/server/repositories/locations"
	"locshare/internal/server/repositories/users"
)

// SQLiteRepositoryManager vends SQLite-backed repositories for
// single-binary and development deployments.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Locations(db dbx.DBTX) locations.Repository {
	return locations.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Accesses(db dbx.DBTX) accesses.Repository {
	return accesses.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Events(db dbx.DBTX) events.Repository {
	return events.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations with goose.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.SQLite())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

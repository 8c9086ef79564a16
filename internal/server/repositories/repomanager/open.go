package repomanager

import (
	"database/sql"
	"fmt"
	"strings"
)

// Open picks a backend from the DSN, opens the database handle and returns
// it together with the matching RepositoryManager.
//
// DSNs starting with postgres:// (or postgresql://) select the pgx driver;
// everything else is treated as a SQLite path or URI.
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	driver, manager := backendFor(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	if driver == "sqlite" {
		// modernc's driver is not safe for concurrent writes over
		// multiple connections.
		db.SetMaxOpenConns(1)
	}
	return db, manager, nil
}

func backendFor(dsn string) (driver string, manager RepositoryManager) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx", NewPostgresRepositoryManager()
	}
	return "sqlite", NewSQLiteRepositoryManager()
}

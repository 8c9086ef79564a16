package events

import (
	"context"
	"fmt"

	"locshare/internal/dbx"
	"locshare/internal/server/models"
)

// SQLiteRepository implements Repository for the embedded SQLite backend.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository constructs a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, event *models.Event) error {
	query := `INSERT INTO history (object_type, action_type, object_id, details) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		string(event.ObjectType), string(event.ActionType), event.ObjectID, event.Details)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

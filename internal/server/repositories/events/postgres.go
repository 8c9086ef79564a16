// Package events provides repositories for the audit history table.
package events

import (
	"context"
	"fmt"

	"locshare/internal/dbx"
	"locshare/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, event *models.Event) error {
	query :=
		`INSERT INTO history (object_type, action_type, object_id, details)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		string(event.ObjectType), string(event.ActionType), event.ObjectID, event.Details)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

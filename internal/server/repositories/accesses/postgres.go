// Package accesses provides repositories for access grants.
package accesses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"locshare/internal/common"
	"locshare/internal/dbx"
	"locshare/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a grant and returns it with the assigned id. A second
// grant for the same (location, user) pair yields common.ErrDuplicateGrant
// via the unique constraint, regardless of concurrent writers.
func (r *PostgresRepository) Create(ctx context.Context, access *models.Access) (*models.Access, error) {
	query :=
		`INSERT INTO accesses (location_id, user_id, level)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		access.LocationID, access.UserID, string(access.Level)).Scan(&access.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrDuplicateGrant
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return access, nil
}

func (r *PostgresRepository) Find(ctx context.Context, locationID, userID int64) (*models.Access, error) {
	query :=
		`SELECT id, location_id, user_id, level FROM accesses
		 WHERE location_id = $1 AND user_id = $2
		 `

	access := &models.Access{}
	err := r.db.QueryRowContext(ctx, query, locationID, userID).
		Scan(&access.ID, &access.LocationID, &access.UserID, &access.Level)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrGrantNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return access, nil
}

// Toggle flips the grant level between ADMIN and READ in a single statement
// and returns the updated grant. No grant yields common.ErrGrantNotFound.
func (r *PostgresRepository) Toggle(ctx context.Context, locationID, userID int64) (*models.Access, error) {
	query :=
		`UPDATE accesses
		 SET level = CASE WHEN level = 'ADMIN' THEN 'READ' ELSE 'ADMIN' END
		 WHERE location_id = $1 AND user_id = $2
		 RETURNING id, location_id, user_id, level
		 `

	access := &models.Access{}
	err := r.db.QueryRowContext(ctx, query, locationID, userID).
		Scan(&access.ID, &access.LocationID, &access.UserID, &access.Level)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrGrantNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return access, nil
}

func (r *PostgresRepository) DeleteByLocation(ctx context.Context, locationID int64) error {
	query := `DELETE FROM accesses WHERE location_id = $1`

	if _, err := r.db.ExecContext(ctx, query, locationID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM accesses WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

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

// SQLiteRepository implements Repository for the embedded SQLite backend.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository constructs a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, access *models.Access) (*models.Access, error) {
	query := `INSERT INTO accesses (location_id, user_id, level) VALUES (?, ?, ?) RETURNING id`

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

func (r *SQLiteRepository) Find(ctx context.Context, locationID, userID int64) (*models.Access, error) {
	query := `SELECT id, location_id, user_id, level FROM accesses WHERE location_id = ? AND user_id = ?`

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

func (r *SQLiteRepository) Toggle(ctx context.Context, locationID, userID int64) (*models.Access, error) {
	query := `UPDATE accesses
		 SET level = CASE WHEN level = 'ADMIN' THEN 'READ' ELSE 'ADMIN' END
		 WHERE location_id = ? AND user_id = ?
		 RETURNING id, location_id, user_id, level`

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

func (r *SQLiteRepository) DeleteByLocation(ctx context.Context, locationID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accesses WHERE location_id = ?`, locationID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accesses WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

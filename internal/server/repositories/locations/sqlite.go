package locations

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

func (r *SQLiteRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	query := `INSERT INTO locations (name, address, owner_id) VALUES (?, ?, ?) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		location.Name, location.Address, location.OwnerID).Scan(&location.ID)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return location, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query := `SELECT id, name, address, owner_id FROM locations WHERE id = ?`

	loc := &models.Location{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.Address, &loc.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrLocationNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return loc, nil
}

func (r *SQLiteRepository) GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (*models.Location, error) {
	query := `SELECT id, name, address, owner_id FROM locations WHERE name = ? AND owner_id = ?`

	loc := &models.Location{}
	err := r.db.QueryRowContext(ctx, query, name, ownerID).Scan(&loc.ID, &loc.Name, &loc.Address, &loc.OwnerID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrLocationNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return loc, nil
}

func (r *SQLiteRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*models.Location, error) {
	query := `SELECT id, name, address, owner_id FROM locations WHERE owner_id = ? ORDER BY id`
	return r.collect(ctx, query, ownerID)
}

func (r *SQLiteRepository) FindGrantedTo(ctx context.Context, userID int64, level models.Level) ([]*models.Location, error) {
	query := `SELECT l.id, l.name, l.address, l.owner_id
		 FROM locations l JOIN accesses a ON l.id = a.location_id
		 WHERE a.user_id = ? AND a.level = ?
		 ORDER BY a.id`
	return r.collect(ctx, query, userID, string(level))
}

func (r *SQLiteRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations WHERE owner_id = ?`, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrLocationNotFound
	}
	return nil
}

func (r *SQLiteRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Location, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.OwnerID); err != nil {
			return nil, err
		}
		result = append(result, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Package locations provides repositories for registered locations.
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

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a location and returns it with the assigned id. A name
// collision for the same owner yields common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	query :=
		`INSERT INTO locations (name, address, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

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

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	query :=
		`SELECT id, name, address, owner_id FROM locations
		 WHERE id = $1
		 `

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

func (r *PostgresRepository) GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (*models.Location, error) {
	query :=
		`SELECT id, name, address, owner_id FROM locations
		 WHERE name = $1 AND owner_id = $2
		 `

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

// FindByOwner returns every location owned by ownerID, oldest first.
func (r *PostgresRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*models.Location, error) {
	query :=
		`SELECT id, name, address, owner_id FROM locations
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	return r.collect(ctx, query, ownerID)
}

// FindGrantedTo returns every location with an access grant matching
// (userID, level), in grant insertion order.
func (r *PostgresRepository) FindGrantedTo(ctx context.Context, userID int64, level models.Level) ([]*models.Location, error) {
	query :=
		`SELECT l.id, l.name, l.address, l.owner_id
		 FROM locations l JOIN accesses a ON l.id = a.location_id
		 WHERE a.user_id = $1 AND a.level = $2
		 ORDER BY a.id
		 `

	return r.collect(ctx, query, userID, string(level))
}

func (r *PostgresRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM locations WHERE owner_id = $1`

	var n int64
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Delete removes the location row. The caller must have revoked the grants
// first; the schema has no cascade so the ordering is enforced in the service.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM locations WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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

func (r *PostgresRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Location, error) {
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

package locations

import (
	"context"

	"locshare/internal/server/models"
)

// Repository is the location slice of the entity store. FindByOwner and
// FindGrantedTo are the two set-query shapes the resolvers compose; both
// return rows in insertion order so callers get deterministic results.
type Repository interface {
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	GetByNameAndOwner(ctx context.Context, name string, ownerID int64) (*models.Location, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*models.Location, error)
	FindGrantedTo(ctx context.Context, userID int64, level models.Level) ([]*models.Location, error)
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

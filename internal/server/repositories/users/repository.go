package users

import (
	"context"

	"locshare/internal/server/models"
)

// Repository is the user slice of the entity store.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// AllOnLocation lists users holding a grant on the location, excluding
	// excludeID (normally the caller).
	AllOnLocation(ctx context.Context, locationID, excludeID int64) ([]*models.User, error)
	Delete(ctx context.Context, id int64) error
}

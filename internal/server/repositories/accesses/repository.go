package accesses

import (
	"context"

	"locshare/internal/server/models"
)

// Repository is the access-grant slice of the entity store. The store keeps
// a unique constraint on (location_id, user_id), so Create is the final
// arbiter of the at-most-one-grant-per-pair invariant even under concurrent
// writers.
type Repository interface {
	Create(ctx context.Context, access *models.Access) (*models.Access, error)
	Find(ctx context.Context, locationID, userID int64) (*models.Access, error)
	// Toggle flips ADMIN<->READ in place and returns the updated grant.
	Toggle(ctx context.Context, locationID, userID int64) (*models.Access, error)
	// DeleteByLocation and DeleteByUser are idempotent: deleting with no
	// grants present succeeds silently.
	DeleteByLocation(ctx context.Context, locationID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

package events

import (
	"context"

	"locshare/internal/server/models"
)

// Repository appends audit history rows. Writes happen after the primary
// mutation already succeeded, so implementations must never be load-bearing.
type Repository interface {
	Insert(ctx context.Context, event *models.Event) error
}

// Package services contains the server-side business logic: the visibility
// and share-candidate resolvers, the grant lifecycle, and the ownership
// checks gating every mutation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"locshare/internal/common"
	"locshare/internal/logging"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/repomanager"
)

// LocationService resolves which locations a user can view and manages the
// location lifecycle. All resolver methods are read-only; an empty result is
// success, never an error.
type LocationService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	audit  *AuditRecorder
	logger logging.Logger
}

// NewLocationService constructs a LocationService.
func NewLocationService(db *sql.DB, rm repomanager.RepositoryManager, audit *AuditRecorder, logger logging.Logger) *LocationService {
	return &LocationService{db: db, rm: rm, audit: audit, logger: logger.With("module", "locations")}
}

// Add registers a new location owned by ownerID. A second location with the
// same name for the same owner yields common.ErrAlreadyExists.
func (s *LocationService) Add(ctx context.Context, ownerID int64, name, address string) (*models.Location, error) {
	repo := s.rm.Locations(s.db)

	_, err := repo.GetByNameAndOwner(ctx, name, ownerID)
	if err == nil {
		s.logger.Warn(ctx, "add location rejected, name taken", "owner_id", ownerID, "name", name)
		return nil, common.ErrAlreadyExists
	}
	if !errors.Is(err, common.ErrLocationNotFound) {
		return nil, err
	}

	location, err := repo.Create(ctx, &models.Location{Name: name, Address: address, OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("error creating location: %w", err)
	}

	s.audit.Record(models.ObjectLocation, models.ActionCreated, location.ID, location.Name)
	return location, nil
}

// OwnedBy returns every location whose owner is userID.
func (s *LocationService) OwnedBy(ctx context.Context, userID int64) ([]*models.Location, error) {
	return s.rm.Locations(s.db).FindByOwner(ctx, userID)
}

// GrantedTo returns every location granted to userID at the given level.
func (s *LocationService) GrantedTo(ctx context.Context, userID int64, level models.Level) ([]*models.Location, error) {
	return s.rm.Locations(s.db).FindGrantedTo(ctx, userID, level)
}

// AllVisible computes everything userID may view: owned locations plus
// locations granted at either level. The three reads run concurrently and
// the result is assembled only after all of them finished; the first failure
// wins and no partial data is used.
func (s *LocationService) AllVisible(ctx context.Context, userID int64) (*models.VisibleLocations, error) {
	repo := s.rm.Locations(s.db)

	var visible models.VisibleLocations

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owned, err := repo.FindByOwner(ctx, userID)
		visible.Owned = owned
		return err
	})
	g.Go(func() error {
		admin, err := repo.FindGrantedTo(ctx, userID, models.LevelAdmin)
		visible.Admin = admin
		return err
	})
	g.Go(func() error {
		read, err := repo.FindGrantedTo(ctx, userID, models.LevelRead)
		visible.Read = read
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &visible, nil
}

// MembersOn lists the users holding a grant on the location. The location
// must be visible to the actor; otherwise the actor learns nothing beyond
// common.ErrLocationNotFound.
func (s *LocationService) MembersOn(ctx context.Context, actorID, locationID int64) ([]*models.User, error) {
	visible, err := s.AllVisible(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !containsLocation(visible.All(), locationID) {
		return nil, common.ErrLocationNotFound
	}

	return s.rm.Users(s.db).AllOnLocation(ctx, locationID, actorID)
}

// Delete removes the location. Only the owner may delete; every grant on the
// location is revoked before the row itself is removed. The revoke-then-delete
// ordering is a hard contract: a failure between the two steps leaves a
// grantless location that a retry can finish off, never dangling grants.
func (s *LocationService) Delete(ctx context.Context, actorID, locationID int64) error {
	repo := s.rm.Locations(s.db)

	location, err := repo.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location.OwnerID != actorID {
		s.logger.Warn(ctx, "delete location rejected, not owner",
			"actor_id", actorID, "location_id", locationID)
		return common.ErrNotOwner
	}

	if err := s.rm.Accesses(s.db).DeleteByLocation(ctx, locationID); err != nil {
		return fmt.Errorf("error revoking grants: %w", err)
	}
	if err := repo.Delete(ctx, locationID); err != nil {
		return fmt.Errorf("error deleting location: %w", err)
	}

	s.audit.Record(models.ObjectLocation, models.ActionDeleted, locationID, location.Name)
	return nil
}

func containsLocation(locations []*models.Location, id int64) bool {
	for _, l := range locations {
		if l.ID == id {
			return true
		}
	}
	return false
}

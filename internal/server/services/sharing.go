package services

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/sync/errgroup"

	"locshare/internal/common"
	"locshare/internal/logging"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/repomanager"
)

// SharingService computes which locations an acting user may newly share
// with a target user. It is a pure query: authorization for the actual share
// mutation lives in AccessService.
type SharingService struct {
	db        *sql.DB
	rm        repomanager.RepositoryManager
	locations *LocationService
	logger    logging.Logger
}

// NewSharingService constructs a SharingService on top of the visibility
// resolver.
func NewSharingService(db *sql.DB, rm repomanager.RepositoryManager, locations *LocationService, logger logging.Logger) *SharingService {
	return &SharingService{db: db, rm: rm, locations: locations, logger: logger.With("module", "sharing")}
}

// ShareCandidates returns the locations actorID may newly share with
// targetID: the actor's shareable pool (owned plus ADMIN grants — READ
// grantees may not extend sharing) minus everything the target can already
// see. The contributing reads run concurrently; the set difference is only
// computed after every read finished, and the first failure propagates
// instead of a partial result.
//
// An empty result is success: the actor simply has nothing new to offer.
// A missing target yields common.ErrTargetUserNotFound.
func (s *SharingService) ShareCandidates(ctx context.Context, actorID, targetID int64) ([]*models.Location, error) {
	locRepo := s.rm.Locations(s.db)
	userRepo := s.rm.Users(s.db)

	var (
		owned         []*models.Location
		admin         []*models.Location
		targetVisible *models.VisibleLocations
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, err = locRepo.FindByOwner(ctx, actorID)
		return err
	})
	g.Go(func() error {
		var err error
		admin, err = locRepo.FindGrantedTo(ctx, actorID, models.LevelAdmin)
		return err
	})
	g.Go(func() error {
		var err error
		targetVisible, err = s.locations.AllVisible(ctx, targetID)
		return err
	})
	g.Go(func() error {
		_, err := userRepo.GetByID(ctx, targetID)
		if errors.Is(err, common.ErrUserNotFound) {
			return common.ErrTargetUserNotFound
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exclude := make(map[int64]struct{})
	for _, l := range targetVisible.All() {
		exclude[l.ID] = struct{}{}
	}

	// Owned before granted; dedupe guards against a location appearing in
	// both pools even though the no-self-grant invariant forbids it.
	candidates := make([]*models.Location, 0, len(owned)+len(admin))
	seen := make(map[int64]struct{})
	for _, l := range append(append([]*models.Location{}, owned...), admin...) {
		if _, ok := exclude[l.ID]; ok {
			continue
		}
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		candidates = append(candidates, l)
	}

	return candidates, nil
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"locshare/internal/common"
	"locshare/internal/logging"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/repomanager"
	"locshare/internal/syncx"
)

// AccessService manages the grant lifecycle and enforces the authorization
// rules on grant mutations. Validate-then-write sequences on the same
// (location, user) pair are serialized through a keyed lock; the store's
// unique constraint on the pair is the final backstop against a competing
// writer sneaking in a duplicate grant.
type AccessService struct {
	db         *sql.DB
	rm         repomanager.RepositoryManager
	sharing    *SharingService
	audit      *AuditRecorder
	grantLocks *syncx.KeyedMutex
	logger     logging.Logger
}

// NewAccessService constructs an AccessService.
func NewAccessService(db *sql.DB, rm repomanager.RepositoryManager, sharing *SharingService, audit *AuditRecorder, logger logging.Logger) *AccessService {
	return &AccessService{
		db:         db,
		rm:         rm,
		sharing:    sharing,
		audit:      audit,
		grantLocks: syncx.NewKeyedMutex(),
		logger:     logger.With("module", "access"),
	}
}

func grantKey(locationID, userID int64) string {
	return fmt.Sprintf("%d:%d", locationID, userID)
}

// Share creates a grant for targetID on locationID at the given level, on
// behalf of actorID. Owners and ADMIN grantees may share; the policy is
// enforced through the share-candidate set. Self-share is rejected first,
// before any store read.
func (s *AccessService) Share(ctx context.Context, actorID, locationID, targetID int64, level models.Level) (*models.Access, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid level %q", level)
	}
	if actorID == targetID {
		s.logger.Warn(ctx, "share rejected, self share", "actor_id", actorID, "location_id", locationID)
		return nil, common.ErrSelfShare
	}

	key := grantKey(locationID, targetID)
	s.grantLocks.Lock(key)
	defer s.grantLocks.Unlock(key)

	// Existing grant first: it is the more specific failure, and an already
	// granted location would otherwise surface as mere ineligibility.
	_, err := s.rm.Accesses(s.db).Find(ctx, locationID, targetID)
	if err == nil {
		return nil, common.ErrDuplicateGrant
	}
	if !errors.Is(err, common.ErrGrantNotFound) {
		return nil, err
	}

	candidates, err := s.sharing.ShareCandidates(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if !containsLocation(candidates, locationID) {
		s.logger.Warn(ctx, "share rejected, location not eligible",
			"actor_id", actorID, "location_id", locationID, "target_id", targetID)
		return nil, common.ErrLocationNotEligible
	}

	access, err := s.rm.Accesses(s.db).Create(ctx, &models.Access{
		LocationID: locationID,
		UserID:     targetID,
		Level:      level,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(models.ObjectAccess, models.ActionCreated, access.ID, "")
	return access, nil
}

// ChangeAccess toggles the grant level for (locationID, targetID) between
// ADMIN and READ. Only the location owner may change levels; the ownership
// check runs before the grant-existence check.
func (s *AccessService) ChangeAccess(ctx context.Context, actorID, locationID, targetID int64) (*models.Access, error) {
	location, err := s.rm.Locations(s.db).GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location.OwnerID != actorID {
		s.logger.Warn(ctx, "change access rejected, not owner",
			"actor_id", actorID, "location_id", locationID)
		return nil, common.ErrNotOwner
	}

	key := grantKey(locationID, targetID)
	s.grantLocks.Lock(key)
	defer s.grantLocks.Unlock(key)

	return s.rm.Accesses(s.db).Toggle(ctx, locationID, targetID)
}

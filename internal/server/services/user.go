package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"locshare/internal/common"
	"locshare/internal/logging"
	"locshare/internal/server/auth"
	"locshare/internal/server/config"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/repomanager"
)

// UserService handles registration, login, and account deletion.
type UserService struct {
	db                          *sql.DB
	rm                          repomanager.RepositoryManager
	audit                       *AuditRecorder
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, audit *AuditRecorder, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		rm:                          rm,
		audit:                       audit,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "users"),
	}
}

// Register creates a new account. A taken login yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, name, login, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.rm.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Login: login, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			s.logger.Warn(ctx, "registration rejected, login taken", "login", login)
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.audit.Record(models.ObjectUser, models.ActionCreated, user.ID, user.Login)
	return user, nil
}

// Login verifies the credentials and mints an access token. Both an unknown
// login and a wrong password yield common.ErrUnauthorized, so callers cannot
// probe for existing accounts.
func (s *UserService) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	repo := s.rm.Users(s.db)

	user, err := repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, fmt.Errorf("error generating token: %w", err)
	}
	return token, user, nil
}

// Delete removes the account of userID. Deletion is forbidden while the
// user still owns locations: owned locations are never cascaded, so the user
// must delete (or keep) them explicitly first. Grants held by the user are
// revoked before the row itself is removed, mirroring the location delete
// ordering.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	owned, err := s.rm.Locations(s.db).CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	if owned > 0 {
		s.logger.Warn(ctx, "delete user rejected, still owns locations",
			"user_id", userID, "owned", owned)
		return common.ErrUserOwnsLocations
	}

	if err := s.rm.Accesses(s.db).DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("error revoking grants: %w", err)
	}
	if err := s.rm.Users(s.db).Delete(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	s.audit.Record(models.ObjectUser, models.ActionDeleted, userID, "")
	return nil
}

// Package httpapi exposes the sharing engine over a JSON HTTP API. The
// transport is thin: it authenticates, decodes, delegates to the services
// and maps the error taxonomy onto statuses and stable codes.
package httpapi

import (
	"context"
	"net/http"

	"locshare/internal/logging"
	"locshare/internal/server/models"
)

// UserService is the account slice of the core consumed by the transport.
type UserService interface {
	Register(ctx context.Context, name, login, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (string, *models.User, error)
	Delete(ctx context.Context, userID int64) error
}

// LocationService resolves visibility and manages the location lifecycle.
type LocationService interface {
	Add(ctx context.Context, ownerID int64, name, address string) (*models.Location, error)
	AllVisible(ctx context.Context, userID int64) (*models.VisibleLocations, error)
	MembersOn(ctx context.Context, actorID, locationID int64) ([]*models.User, error)
	Delete(ctx context.Context, actorID, locationID int64) error
}

// SharingService computes share candidates.
type SharingService interface {
	ShareCandidates(ctx context.Context, actorID, targetID int64) ([]*models.Location, error)
}

// AccessService manages grants.
type AccessService interface {
	Share(ctx context.Context, actorID, locationID, targetID int64, level models.Level) (*models.Access, error)
	ChangeAccess(ctx context.Context, actorID, locationID, targetID int64) (*models.Access, error)
}

// NewRouter assembles the API router with all endpoints registered.
func NewRouter(us UserService, ls LocationService, ss SharingService, as AccessService, secret []byte, logger logging.Logger) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Users: us}
	usersHandler := &UsersHandler{Users: us}
	locationsHandler := &LocationsHandler{Locations: ls, Sharing: ss}
	accessHandler := &AccessHandler{Access: as}

	authMW := authMiddleware(secret)

	// Public: registration and login.
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("GET /api/locations", authMW(http.HandlerFunc(locationsHandler.List)))
	mux.Handle("POST /api/locations", authMW(http.HandlerFunc(locationsHandler.Add)))
	mux.Handle("GET /api/locations/{id}/users", authMW(http.HandlerFunc(locationsHandler.Members)))
	mux.Handle("DELETE /api/locations/{id}", authMW(http.HandlerFunc(locationsHandler.Delete)))
	mux.Handle("GET /api/users/{id}/share-candidates", authMW(http.HandlerFunc(locationsHandler.ShareCandidates)))
	mux.Handle("POST /api/locations/share", authMW(http.HandlerFunc(accessHandler.Share)))
	mux.Handle("PUT /api/locations/access", authMW(http.HandlerFunc(accessHandler.Change)))
	mux.Handle("DELETE /api/user", authMW(http.HandlerFunc(usersHandler.DeleteSelf)))

	return loggingMiddleware(logger)(mux)
}

package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"locshare/internal/common"
	"locshare/internal/dbx"
	"locshare/internal/logging"
	"locshare/internal/server/config"
	"locshare/internal/server/models"
	"locshare/internal/server/repositories/accesses"
	"locshare/internal/server/repositories/events"
	"locshare/internal/server/repositories/locations"
	"locshare/internal/server/repositories/users"
)

// ---- test logger ----

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- in-memory store ----

// fakeStore is an in-memory entity store backing every fake repository. It
// records delete operations in order so tests can assert the
// revoke-then-delete contract.
type fakeStore struct {
	mu        sync.Mutex
	users     map[int64]*models.User
	locations map[int64]*models.Location
	accesses  map[int64]*models.Access
	events    []*models.Event
	nextID    int64
	ops       []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[int64]*models.User),
		locations: make(map[int64]*models.Location),
		accesses:  make(map[int64]*models.Access),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) opLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.ops...)
}

// seeding helpers, callers hold no lock

func (f *fakeStore) addUser(name, login string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &models.User{ID: f.id(), Name: name, Login: login}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) addLocation(ownerID int64, name string) *models.Location {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := &models.Location{ID: f.id(), Name: name, Address: name + " street", OwnerID: ownerID}
	f.locations[l.ID] = l
	return l
}

func (f *fakeStore) addAccess(locationID, userID int64, level models.Level) *models.Access {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := &models.Access{ID: f.id(), LocationID: locationID, UserID: userID, Level: level}
	f.accesses[a.ID] = a
	return a
}

func (f *fakeStore) sortedAccesses() []*models.Access {
	out := make([]*models.Access, 0, len(f.accesses))
	for _, a := range f.accesses {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---- RepositoryManager ----

func (f *fakeStore) Users(dbx.DBTX) users.Repository         { return &fakeUsers{f} }
func (f *fakeStore) Locations(dbx.DBTX) locations.Repository { return &fakeLocations{f} }
func (f *fakeStore) Accesses(dbx.DBTX) accesses.Repository   { return &fakeAccesses{f} }
func (f *fakeStore) Events(dbx.DBTX) events.Repository       { return &fakeEvents{f} }

func (f *fakeStore) RunMigrations(context.Context, *sql.DB) error { return nil }

// ---- users ----

type fakeUsers struct{ s *fakeStore }

func (r *fakeUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Login == user.Login {
			return nil, common.ErrAlreadyExists
		}
	}
	user.ID = r.s.id()
	r.s.users[user.ID] = user
	return user, nil
}

func (r *fakeUsers) GetByLogin(_ context.Context, login string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, common.ErrUserNotFound
}

func (r *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrUserNotFound
}

func (r *fakeUsers) AllOnLocation(_ context.Context, locationID, excludeID int64) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.User
	for _, a := range r.s.sortedAccesses() {
		if a.LocationID == locationID && a.UserID != excludeID {
			out = append(out, r.s.users[a.UserID])
		}
	}
	return out, nil
}

func (r *fakeUsers) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return common.ErrUserNotFound
	}
	delete(r.s.users, id)
	r.s.ops = append(r.s.ops, "users.Delete")
	return nil
}

// ---- locations ----

type fakeLocations struct{ s *fakeStore }

func (r *fakeLocations) Create(_ context.Context, location *models.Location) (*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.OwnerID == location.OwnerID && l.Name == location.Name {
			return nil, common.ErrAlreadyExists
		}
	}
	location.ID = r.s.id()
	r.s.locations[location.ID] = location
	return location, nil
}

func (r *fakeLocations) GetByID(_ context.Context, id int64) (*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.locations[id]; ok {
		return l, nil
	}
	return nil, common.ErrLocationNotFound
}

func (r *fakeLocations) GetByNameAndOwner(_ context.Context, name string, ownerID int64) (*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.OwnerID == ownerID && l.Name == name {
			return l, nil
		}
	}
	return nil, common.ErrLocationNotFound
}

func (r *fakeLocations) FindByOwner(_ context.Context, ownerID int64) ([]*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Location
	for _, l := range r.s.locations {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLocations) FindGrantedTo(_ context.Context, userID int64, level models.Level) ([]*models.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*models.Location
	for _, a := range r.s.sortedAccesses() {
		if a.UserID == userID && a.Level == level {
			out = append(out, r.s.locations[a.LocationID])
		}
	}
	return out, nil
}

func (r *fakeLocations) CountByOwner(_ context.Context, ownerID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, l := range r.s.locations {
		if l.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLocations) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[id]; !ok {
		return common.ErrLocationNotFound
	}
	delete(r.s.locations, id)
	r.s.ops = append(r.s.ops, "locations.Delete")
	return nil
}

// ---- accesses ----

type fakeAccesses struct{ s *fakeStore }

func (r *fakeAccesses) Create(_ context.Context, access *models.Access) (*models.Access, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accesses {
		if a.LocationID == access.LocationID && a.UserID == access.UserID {
			return nil, common.ErrDuplicateGrant
		}
	}
	access.ID = r.s.id()
	r.s.accesses[access.ID] = access
	return access, nil
}

func (r *fakeAccesses) Find(_ context.Context, locationID, userID int64) (*models.Access, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accesses {
		if a.LocationID == locationID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, common.ErrGrantNotFound
}

func (r *fakeAccesses) Toggle(_ context.Context, locationID, userID int64) (*models.Access, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.accesses {
		if a.LocationID == locationID && a.UserID == userID {
			a.Level = a.Level.Toggled()
			return a, nil
		}
	}
	return nil, common.ErrGrantNotFound
}

func (r *fakeAccesses) DeleteByLocation(_ context.Context, locationID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.accesses {
		if a.LocationID == locationID {
			delete(r.s.accesses, id)
		}
	}
	r.s.ops = append(r.s.ops, "accesses.DeleteByLocation")
	return nil
}

func (r *fakeAccesses) DeleteByUser(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.accesses {
		if a.UserID == userID {
			delete(r.s.accesses, id)
		}
	}
	r.s.ops = append(r.s.ops, "accesses.DeleteByUser")
	return nil
}

// ---- events ----

type fakeEvents struct{ s *fakeStore }

func (r *fakeEvents) Insert(_ context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.events = append(r.s.events, event)
	return nil
}

// ---- wiring ----

type testEnv struct {
	store     *fakeStore
	locations *LocationService
	sharing   *SharingService
	access    *AccessService
	users     *UserService
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	logger := nopLogger{}

	cfg := &config.Config{SecretKey: "test-secret", AccessTokenValidityDuration: time.Minute}

	audit := NewAuditRecorder(nil, store, logger)
	ls := NewLocationService(nil, store, audit, logger)
	ss := NewSharingService(nil, store, ls, logger)
	as := NewAccessService(nil, store, ss, audit, logger)
	us := NewUserService(nil, store, audit, cfg, logger)

	return &testEnv{store: store, locations: ls, sharing: ss, access: as, users: us}
}

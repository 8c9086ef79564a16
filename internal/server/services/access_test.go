package services

import (
	"context"
	"errors"
	"testing"

	"locshare/internal/common"
	"locshare/internal/server/models"
)

func TestShare_OwnerShares(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")

	access, err := env.access.Share(context.Background(), owner.ID, loc.ID, bob.ID, models.LevelRead)
	if err != nil {
		t.Fatalf("Share error: %v", err)
	}
	if access.LocationID != loc.ID || access.UserID != bob.ID || access.Level != models.LevelRead {
		t.Fatalf("unexpected access: %+v", access)
	}
}

func TestShare_AdminGranteeShares(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	carol := env.store.addUser("Carol", "carol")
	loc := env.store.addLocation(owner.ID, "Office")
	env.store.addAccess(loc.ID, bob.ID, models.LevelAdmin)

	access, err := env.access.Share(context.Background(), bob.ID, loc.ID, carol.ID, models.LevelAdmin)
	if err != nil {
		t.Fatalf("Share error: %v", err)
	}
	if access.UserID != carol.ID || access.Level != models.LevelAdmin {
		t.Fatalf("unexpected access: %+v", access)
	}
}

func TestShare_ReadGranteeRejected(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	carol := env.store.addUser("Carol", "carol")
	loc := env.store.addLocation(owner.ID, "Office")
	env.store.addAccess(loc.ID, bob.ID, models.LevelRead)

	_, err := env.access.Share(context.Background(), bob.ID, loc.ID, carol.ID, models.LevelRead)
	if !errors.Is(err, common.ErrLocationNotEligible) {
		t.Fatalf("expected ErrLocationNotEligible, got %v", err)
	}
}

// Self-share is rejected before any lookup, so it wins even when the
// location does not exist.
func TestShare_SelfShareRejectedFirst(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")

	_, err := env.access.Share(context.Background(), owner.ID, 999, owner.ID, models.LevelRead)
	if !errors.Is(err, common.ErrSelfShare) {
		t.Fatalf("expected ErrSelfShare, got %v", err)
	}
}

func TestShare_DuplicateGrant(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")
	env.store.addAccess(loc.ID, bob.ID, models.LevelRead)

	_, err := env.access.Share(context.Background(), owner.ID, loc.ID, bob.ID, models.LevelAdmin)
	if !errors.Is(err, common.ErrDuplicateGrant) {
		t.Fatalf("expected ErrDuplicateGrant, got %v", err)
	}
}

func TestShare_UnrelatedActorRejected(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	outsider := env.store.addUser("Bob", "bob")
	carol := env.store.addUser("Carol", "carol")
	loc := env.store.addLocation(owner.ID, "Office")

	_, err := env.access.Share(context.Background(), outsider.ID, loc.ID, carol.ID, models.LevelRead)
	if !errors.Is(err, common.ErrLocationNotEligible) {
		t.Fatalf("expected ErrLocationNotEligible, got %v", err)
	}
}

func TestShare_UnknownTarget(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	loc := env.store.addLocation(owner.ID, "Office")

	_, err := env.access.Share(context.Background(), owner.ID, loc.ID, 999, models.LevelRead)
	if !errors.Is(err, common.ErrTargetUserNotFound) {
		t.Fatalf("expected ErrTargetUserNotFound, got %v", err)
	}
}

func TestShare_InvalidLevel(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")

	_, err := env.access.Share(context.Background(), owner.ID, loc.ID, bob.ID, models.Level("WRITE"))
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestChangeAccess_TogglesBothWays(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")
	env.store.addAccess(loc.ID, bob.ID, models.LevelRead)

	access, err := env.access.ChangeAccess(context.Background(), owner.ID, loc.ID, bob.ID)
	if err != nil {
		t.Fatalf("ChangeAccess error: %v", err)
	}
	if access.Level != models.LevelAdmin {
		t.Fatalf("expected ADMIN after first toggle, got %s", access.Level)
	}

	access, err = env.access.ChangeAccess(context.Background(), owner.ID, loc.ID, bob.ID)
	if err != nil {
		t.Fatalf("ChangeAccess error: %v", err)
	}
	if access.Level != models.LevelRead {
		t.Fatalf("expected READ after second toggle, got %s", access.Level)
	}
}

func TestChangeAccess_OnlyOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	carol := env.store.addUser("Carol", "carol")
	loc := env.store.addLocation(owner.ID, "Office")
	env.store.addAccess(loc.ID, bob.ID, models.LevelAdmin)
	env.store.addAccess(loc.ID, carol.ID, models.LevelRead)

	// even an ADMIN grantee may not change levels
	_, err := env.access.ChangeAccess(context.Background(), bob.ID, loc.ID, carol.ID)
	if !errors.Is(err, common.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

// Ownership is checked before grant existence, so a non-owner probing a
// grantless pair learns nothing about the grants.
func TestChangeAccess_OwnershipCheckedFirst(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")

	_, err := env.access.ChangeAccess(context.Background(), bob.ID, loc.ID, bob.ID)
	if !errors.Is(err, common.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestChangeAccess_NoGrant(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")
	bob := env.store.addUser("Bob", "bob")
	loc := env.store.addLocation(owner.ID, "Office")

	_, err := env.access.ChangeAccess(context.Background(), owner.ID, loc.ID, bob.ID)
	if !errors.Is(err, common.ErrGrantNotFound) {
		t.Fatalf("expected ErrGrantNotFound, got %v", err)
	}
}

func TestChangeAccess_UnknownLocation(t *testing.T) {
	env := newTestEnv()
	owner := env.store.addUser("Alice", "alice")

	_, err := env.access.ChangeAccess(context.Background(), owner.ID, 999, owner.ID)
	if !errors.Is(err, common.ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

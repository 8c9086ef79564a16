package models

// Level is the permission level carried by an access grant.
type Level string

const (
	// LevelAdmin permits viewing and re-sharing the location.
	LevelAdmin Level = "ADMIN"
	// LevelRead permits viewing only.
	LevelRead Level = "READ"
)

// Valid reports whether l is one of the two known levels.
func (l Level) Valid() bool {
	return l == LevelAdmin || l == LevelRead
}

// Toggled returns the opposite level. The enum is two-valued, so toggling
// twice is the identity.
func (l Level) Toggled() Level {
	if l == LevelAdmin {
		return LevelRead
	}
	return LevelAdmin
}

// Access grants a non-owner user permission on a location. At most one
// grant exists per (LocationID, UserID) pair.
type Access struct {
	ID         int64
	LocationID int64
	UserID     int64
	Level      Level
}

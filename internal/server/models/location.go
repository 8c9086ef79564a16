package models

// Location is a place registered by its owner. OwnerID references the user
// that created it; ownership is never represented as an access grant.
type Location struct {
	ID      int64
	Name    string
	Address string
	OwnerID int64
}

// VisibleLocations buckets everything a user may view. A location appears in
// exactly one bucket: owned locations never carry grants for their owner.
type VisibleLocations struct {
	Owned []*Location
	Admin []*Location
	Read  []*Location
}

// All flattens the buckets in owned-before-granted order.
func (v *VisibleLocations) All() []*Location {
	out := make([]*Location, 0, len(v.Owned)+len(v.Admin)+len(v.Read))
	out = append(out, v.Owned...)
	out = append(out, v.Admin...)
	out = append(out, v.Read...)
	return out
}

package models

import "time"

// ObjectType identifies the entity kind recorded in the audit history.
type ObjectType string

const (
	ObjectUser     ObjectType = "User"
	ObjectLocation ObjectType = "Location"
	ObjectAccess   ObjectType = "UserAccess"
)

// ActionType identifies the mutation recorded in the audit history.
type ActionType string

const (
	ActionCreated ActionType = "CREATED"
	ActionDeleted ActionType = "DELETED"
)

// Event is one audit history row, written after a successful mutation.
type Event struct {
	ID         int64
	ObjectType ObjectType
	ActionType ActionType
	ObjectID   int64
	Details    string
	CreatedAt  time.Time
}

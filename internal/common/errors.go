// Package common defines the sentinel errors shared across locshare
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Policy violations. These are surfaced to the caller as rejected
	// requests with stable codes and are never retried.
	ErrNotOwner            = errors.New("not the location owner")
	ErrSelfShare           = errors.New("cannot share a location with its owner")
	ErrDuplicateGrant      = errors.New("grant already exists")
	ErrGrantNotFound       = errors.New("grant not found")
	ErrTargetUserNotFound  = errors.New("target user not found")
	ErrLocationNotEligible = errors.New("location not eligible for sharing")
	ErrLocationNotFound    = errors.New("location not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserOwnsLocations   = errors.New("user still owns locations")
	ErrAlreadyExists       = errors.New("already exists")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Infrastructure failure. The transport layer maps this to a generic
	// retryable code with no internal detail.
	ErrStoreUnavailable = errors.New("store unavailable")
)

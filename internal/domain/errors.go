// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Access-policy errors
	ErrAccessPolicyNotFound    = errors.New("access policy not found")
	ErrDuplicateAccessPolicies = errors.New("resources must be unique")
	ErrAccessPolicyExists      = errors.New("resource already exists")

	// Organization errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSeatLimitReached     = errors.New("seat limit has been reached")

	// Organization-user errors
	ErrOrgUserNotFound = errors.New("organization user not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyMember   = errors.New("user is already a member of this organization")
	ErrNoUsersToInvite = errors.New("no users to invite")
)

package service

import (
	domainerrors "linkvault/internal/domain/errors"
)

// Owned is implemented by resources that belong to exactly one user.
type Owned interface {
	Owner() int64
}

// OwnershipGuard decides whether a principal may act on a resource.
// A missing resource is treated identically to a non-owned one, so callers
// never learn whether a foreign id exists.
type OwnershipGuard struct{}

// NewOwnershipGuard is the constructor for OwnershipGuard.
func NewOwnershipGuard() *OwnershipGuard {
	return &OwnershipGuard{}
}

// Authorize returns nil when principalID owns the resource, and
// ErrForbidden otherwise. A nil resource is never authorized.
func (g *OwnershipGuard) Authorize(principalID int64, resource Owned) error {
	if resource == nil || resource.Owner() != principalID {
		return domainerrors.ErrForbidden
	}

	return nil
}

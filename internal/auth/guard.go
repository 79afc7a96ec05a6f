// Package auth holds the single-owner authorization guard used by admin routes.
package auth

import (
	"crypto/subtle"

	"github.com/osse101/HeroArena_Go/internal/domain"
)

// Guard permits an action only when the caller is the designated owner
type Guard struct {
	owner string
}

// NewGuard creates a guard for owner. An empty owner rejects every caller.
func NewGuard(owner string) *Guard {
	return &Guard{owner: owner}
}

// Authorize returns domain.ErrUnauthorized unless caller matches the owner
func (g *Guard) Authorize(caller string) error {
	if g.owner == "" || caller == "" {
		return domain.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(caller), []byte(g.owner)) != 1 {
		return domain.ErrUnauthorized
	}
	return nil
}

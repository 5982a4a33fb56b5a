package repository

import (
	"time"

	"bot-admin-panel/internal/features/auth/models"
)

// SessionRepository owns every session record. All methods are in-memory and
// safe for concurrent use; none of them blocks on I/O.
type SessionRepository interface {
	// Create mints an unguessable token and stores a session expiring after ttl.
	Create(identity models.Identity, ttl time.Duration) (string, error)
	// Get returns the session for token, or false if unknown or expired.
	Get(token string) (*models.Session, bool)
	// Destroy removes the session. Unknown tokens are a no-op.
	Destroy(token string)
	// SweepExpired removes every session with ExpiresAt before now and returns
	// how many were removed.
	SweepExpired(now time.Time) int
}

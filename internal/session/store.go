package session

import (
	"context"
	"time"
)

// RevocationStore remembers session ids that were logged out before
// their expiry. Claims themselves are never stored server-side.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

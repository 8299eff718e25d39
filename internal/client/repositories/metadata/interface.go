// Package metadata is the client's local key-value store, backed by SQLite.
// It replaces the platform preference store the mobile app used: the
// signed-in email lives here so the out-of-band device token callback can
// correlate a token with a user, and the local reminder schedule marker
// lives here so disabling notifications can clear it.
package metadata

import "context"

// Keys used by the Daybook client.
const (
	// KeyEmail is the signed-in email, mirrored from the session.
	KeyEmail = "email"
	// KeySchedule marks the locally scheduled reminder time.
	KeySchedule = "schedule"
)

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

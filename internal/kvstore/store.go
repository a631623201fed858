// Package kvstore implements the panel's persisted key-value namespace.
// Each slot holds one serialized collection (accounts, current session,
// failed login attempts, cached per-user data). Backends: sqlite for the
// real panel, an in-memory map for tests.
package kvstore

import "context"

// Well-known slot names. See the auth and accounts packages for the
// payload stored under each.
const (
	KeyAccounts       = "accounts"
	KeyCurrentSession = "current_session"
	KeyFailedAttempts = "failed_login_attempts"
	KeyPreferences    = "user_preferences"
	KeyAnalysisCache  = "analysis_cache"
)

// Store is the persisted key-value namespace.
//
// Get returns (nil, nil) for an absent key. Update runs fn against a
// handle whose writes become visible atomically, so read-modify-write
// sequences on a slot are not torn by a crash mid-write.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}

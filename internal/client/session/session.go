// Package session holds the persisted client session: the token pair and the
// few user fields shown in the terminal client.
//
// The store is passed explicitly to the HTTP client and to every component
// that needs auth state. Nothing reads it ambiently.
package session

import "context"

// Well-known keys.
const (
	KeyAccess    = "access"
	KeyRefresh   = "refresh"
	KeyUsername  = "username"
	KeyFirstName = "firstName"
)

// Store is a small persistent key/value map. Get returns "" for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Tokens reads the access and refresh tokens.
func Tokens(ctx context.Context, s Store) (access, refresh string, err error) {
	if access, err = s.Get(ctx, KeyAccess); err != nil {
		return "", "", err
	}
	if refresh, err = s.Get(ctx, KeyRefresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

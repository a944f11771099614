// The localstore package is the single device-local persistence surface of
// the application. It holds exactly two values today: the session token and
// the theme preference.
package localstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

const (
	// KeyAuthToken is the persisted session token. Only the session store may
	// write or clear it. The stored value comes in two shapes depending on the
	// producer: manual login persists a JSON-quoted wrapper, the redirect flow
	// persists the raw token.
	KeyAuthToken = "auth_token"
	// KeyTheme is the dark/light preference flag. Independent of the session.
	KeyTheme = "theme"
)

type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The persisted token has two producers: manual login stores it JSON-quoted,
// the redirect flow stores it raw. ResolveToken is the single point where the
// ambiguity is resolved; past it only the canonical raw form exists.
//
// Resolution never fails: a value that does not parse as a quoted string is
// already raw.
func ResolveToken(candidate string) string {
	var raw string
	if err := json.Unmarshal([]byte(candidate), &raw); err == nil {
		return raw
	}
	return candidate
}

// WrapToken produces the quoted encoding manual login persists.
func WrapToken(token string) string {
	wrapped, _ := json.Marshal(token)
	return string(wrapped)
}

// Expired reports whether the token carries a JWT expiry claim in the past.
// The claim is read without verifying the signature; the backend remains the
// authority, this only avoids a profile fetch that is guaranteed to fail.
// Opaque tokens and tokens without an expiry are never considered expired.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

package session

import (
	"context"       // Context for store operations
	"crypto/rand"   // Token entropy
	"encoding/hex"  // Token encoding
)

// Store maps opaque browser tokens to authenticated user ids and carries
// single-use flash messages. A token exists from the first request on, even
// while anonymous, so flashes work on the login and register pages too.
//
// State machine per token: Anonymous -> Bind -> Authenticated -> Clear or
// TTL expiry -> Anonymous.
type Store interface {
	// Bind associates the token with an authenticated user id.
	Bind(ctx context.Context, token string, userID uint) error
	// UserID resolves the token to its user id; ok is false when the token
	// is unbound, expired or cleared.
	UserID(ctx context.Context, token string) (userID uint, ok bool, err error)
	// Clear drops the token's user binding immediately.
	Clear(ctx context.Context, token string) error
	// SetFlash stores a status message to show on the next page load.
	SetFlash(ctx context.Context, token, msg string) error
	// PopFlash returns the pending message and removes it; empty when none.
	PopFlash(ctx context.Context, token string) (string, error)
}

// NewToken generates an opaque session token: 32 random bytes, hex-encoded.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

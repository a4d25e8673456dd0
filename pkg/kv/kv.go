package kv

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound signals a missing key. Callers that treat absence as "no saved
// state" check for it with errors.Is.
var ErrNotFound = errors.New("kv: key not found")

// Store is the key-value persistence port the cart, wishlist, and session
// stores depend on. Values are opaque strings (JSON payloads in practice).
// A ttl of zero means the entry never expires.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

const keyNamespace = "techstore"

// Key joins the namespace with the provided parts, skipping empties.
func Key(parts ...string) string {
	clean := []string{keyNamespace}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}

// CartKey returns the storage key holding a session's serialized cart lines.
func CartKey(sessionID string) string {
	return Key("cart", sessionID)
}

// WishlistKey returns the storage key holding a session's wishlist entries.
func WishlistKey(sessionID string) string {
	return Key("wishlist", sessionID)
}

// SessionKey returns the storage key for an auth session token.
func SessionKey(tokenID string) string {
	return Key("session", tokenID)
}

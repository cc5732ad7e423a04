// Package session keeps builder drafts and editor sessions between requests.
package session

import (
	"context"
	"time"
)

// Store is a byte-value key store with per-key expiry.
type Store interface {
	// Get returns ok=false when the key is missing or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

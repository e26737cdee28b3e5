// Package storage defines the key-value persistence port the event store
// writes through. Backends are interchangeable: a file per key for local use,
// a Postgres table, or an in-memory map for tests.
package storage

import "context"

// KV is the persistence port. Get reports absence with ok=false rather than
// an error; Set overwrites unconditionally.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}

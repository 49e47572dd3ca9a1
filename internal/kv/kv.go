// Package kv provides the durable key-value store the record store persists
// into. The interface mirrors origin-scoped browser storage: synchronous
// get/set of serialized blobs under string keys, with finite capacity that
// can be exceeded.
//
// Backends: Memory (default, also the test double), Redis, and Postgres.
package kv

import "context"

// Store is the durable key-value backing for serialized record collections.
//
// Get returns the stored value and true, or ("", false, nil) when the key is
// absent. Set overwrites the whole value for the key; implementations wrap
// capacity rejections in domain.ErrStorageQuota.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

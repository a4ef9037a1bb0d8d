// Package kv provides the durable key-value store used for analytics
// state persistence. Callers must treat every store failure as
// non-fatal: a broken or missing store degrades the service to
// in-memory-only analytics, never to an error surfaced to users.
package kv

// Store is a synchronous string-keyed byte store. Implementations may
// fail on any call (disk full, directory locked, closed database);
// callers are expected to swallow such errors.
type Store interface {
	// Get returns the value for key. The second return is false when
	// the key is absent; err is reserved for store-level failures.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

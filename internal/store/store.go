// Package store is the persistent repository of the ledger. It keeps named
// collections as opaque JSON documents and replaces them whole; there is no
// partial-write or transaction API. Callers read-modify-write entire
// collections, which is deliberate at this data scale.
package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Store is a durable key-value repository of named collections plus a few
// boolean flags. Implementations must make SetCollection atomic from the
// caller's perspective.
type Store interface {
	// GetCollection returns the raw payload of the named collection, or a
	// nil slice if the collection has never been written.
	GetCollection(name string) ([]byte, error)
	// SetCollection overwrites the entire named collection.
	SetCollection(name string, data []byte) error

	GetFlag(name string) (bool, error)
	SetFlag(name string, value bool) error
}

// Load decodes the named collection into a slice of T. A missing collection,
// a backend read error and a malformed payload all yield an empty slice:
// storage trouble is logged, never surfaced across the ledger boundary.
func Load[T any](s Store, log *zap.Logger, name string) []T {
	data, err := s.GetCollection(name)
	if err != nil {
		log.Warn("collection read failed, treating as empty",
			zap.String("collection", name), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("collection payload malformed, treating as empty",
			zap.String("collection", name), zap.Error(err))
		return nil
	}
	return items
}

// Save serializes items and overwrites the named collection. Write failures
// are logged and swallowed; the ledger's operations never error.
func Save[T any](s Store, log *zap.Logger, name string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Warn("collection serialization failed, write dropped",
			zap.String("collection", name), zap.Error(err))
		return
	}
	if err := s.SetCollection(name, data); err != nil {
		log.Warn("collection write failed, write dropped",
			zap.String("collection", name), zap.Error(err))
	}
}

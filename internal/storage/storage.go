// Package storage defines the durable key-value primitives the gallery
// persists through, plus an in-memory implementation. Durable backends live
// in the sqlitestore and filestore subpackages.
package storage

import "context"

// Storage is a minimal key-value slot store. The gallery keeps its whole
// database under a single key and the session pointer under another, so the
// surface is intentionally tiny.
//
// Read returns (nil, nil) when the key is absent; absence is not an error.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

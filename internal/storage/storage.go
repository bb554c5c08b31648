// Package storage provides the persistence port the managers write through:
// a flat, string-keyed blob store in the spirit of browser local storage.
// Each collection is serialized whole under a fixed key and rewritten on
// every mutation, so persisted state never diverges from memory within a
// single process.
package storage

import "context"

// Keys under which the managers persist their state.
const (
	KeyUsers   = "users"
	KeyGoals   = "goals"
	KeySession = "session"
)

// Store is the key-value persistence port.
//
// Get returns (nil, nil) when the key is absent; Delete of an absent key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

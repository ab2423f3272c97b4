package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written or was
// deleted. Callers treat it as an empty value, not a failure.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a synchronous string-keyed document store. Cart state round-trips
// through it as whole JSON documents, one key per document.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

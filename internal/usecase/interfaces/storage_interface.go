package interfaces

import (
	"context"
	"errors"
)

// ErrStorageUnavailable is returned by writes that must fail loudly when no
// storage substrate is configured.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IStorage is the key/value string substrate every façade persists to.
//
// Values are opaque JSON documents. A nil IStorage means "no storage in this
// execution context": reads degrade to empty data and writes follow the
// per-operation contract of each repository.
//
// Implementations: in-memory map, Redis, DynamoDB, PostgreSQL.
type IStorage interface {
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

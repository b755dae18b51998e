package favorites

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Storage is the persistent key-value store favorites are kept in.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

package storage

import (
	"context"
	"errors"
	"regexp"
)

// Store is a flat key-value store holding one JSON document per key
type Store interface {
	// Get returns the value for key and whether it exists
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key
	Clear(ctx context.Context) error
	// Close releases resources held by the store
	Close() error
}

// Sentinel errors
var (
	ErrInvalidKey     = errors.New(ErrMsgInvalidKey)
	ErrClosed         = errors.New(ErrMsgClosed)
	ErrUnknownBackend = errors.New(ErrMsgUnknownBackend)
)

var keyPattern = regexp.MustCompile(KeyPattern)

// ValidateKey rejects keys that are empty or contain characters outside [a-z0-9_]
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return ErrInvalidKey
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Owennied/HimmyGames/internal/storage"
)

// KVStore implements storage.Store on the farm_kv table
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore creates a KV store over an already migrated pool
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Get returns the JSON text stored under key
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, false, err
	}

	var value string
	err := s.pool.QueryRow(ctx, QueryGetValue, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s %s: %w", ErrMsgFailedToGetKey, key, err)
	}
	return []byte(value), true, nil
}

// Set upserts key. value must be a JSON document.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, QueryUpsertValue, key, string(value)); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToSetKey, key, err)
	}
	return nil
}

// Delete removes key
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, QueryDeleteValue, key); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToDeleteKey, key, err)
	}
	return nil
}

// Clear removes every key
func (s *KVStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, QueryClearValues); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClear, err)
	}
	return nil
}

// Close closes the underlying pool
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}

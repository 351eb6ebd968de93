package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/mark3labs/themeswitch/internal/logger"
)

const kvTimeout = 2 * time.Second

// KVStore keeps preferences in a NATS JetStream key-value bucket.
type KVStore struct {
	kv      jetstream.KeyValue
	timeout time.Duration
}

// NewKVStore wraps an existing bucket.
func NewKVStore(kv jetstream.KeyValue) *KVStore {
	return &KVStore{kv: kv, timeout: kvTimeout}
}

func (s *KVStore) Read(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	entry, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, jetstream.ErrKeyNotFound) {
			logger.Warn("Failed to read preference %s from bucket: %v", key, err)
		}
		return "", false
	}
	return string(entry.Value()), true
}

func (s *KVStore) Write(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.kv.PutString(ctx, key, value); err != nil {
		logger.Warn("Failed to write preference %s to bucket: %v", key, err)
	}
}

func (s *KVStore) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.kv.Delete(ctx, key); err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		logger.Warn("Failed to delete preference %s from bucket: %v", key, err)
	}
}

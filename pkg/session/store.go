// Package session provides the key-value stores that hold the dashboard auth session.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("session: key not found")

// Store is a small key-value store for serialized session records.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type scoped struct {
	prefix string
	next   Store
}

// Scope namespaces every key of next under prefix.
func Scope(next Store, prefix string) Store {
	if prefix == "" {
		return next
	}
	return &scoped{prefix: prefix, next: next}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, error) {
	return s.next.Get(ctx, s.key(key))
}

func (s *scoped) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.next.Set(ctx, s.key(key), value, ttl)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, s.key(key))
}

func (s *scoped) key(key string) string {
	return s.prefix + ":" + key
}

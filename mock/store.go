package mock

import (
	"context"

	ghostwriter "github.com/Molefas/ghost-writer"
)

var _ ghostwriter.Store = (*Store)(nil)

// Store is a mock implementation of ghostwriter.Store.
type Store struct {
	GetFn     func(ctx context.Context, key string) ([]byte, error)
	SetFn     func(ctx context.Context, key string, value []byte) error
	GetManyFn func(ctx context.Context, keys []string) (map[string][]byte, error)
	SetManyFn func(ctx context.Context, entries map[string][]byte) error
	DeleteFn  func(ctx context.Context, key string) error
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetFn(ctx, key, value)
}

func (s *Store) GetMany(ctx context.Context, keys []string) (map[string][]byte, error) {
	return s.GetManyFn(ctx, keys)
}

func (s *Store) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.SetManyFn(ctx, entries)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}

package preferences

import (
	"context"
	"sync"

	"github.com/abdidvp/pushkraft/internal/domain"
)

// MemoryStore is an in-process domain.PreferenceStore. Values live only as
// long as the store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

func New() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

// Factory returns a domain.PreferenceStoreFactory producing empty stores.
func Factory() domain.PreferenceStoreFactory {
	return func() domain.PreferenceStore { return New() }
}

func (s *MemoryStore) Get(_ context.Context, key string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Strings reads a string-list preference, accepting both []string and the
// []any shape produced by YAML decoding.
func Strings(ctx context.Context, store domain.PreferenceStore, key string) ([]string, error) {
	if store == nil {
		return nil, nil
	}
	v, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return nil, err
	}
	e := domain.TechnologyElement{Properties: map[string]any{key: v}}
	return e.StringsProperty(key), nil
}

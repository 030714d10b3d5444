package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/trezcool/lms/core"
)

type Store struct {
	table map[string][]byte
	mutex sync.RWMutex
}

var _ core.Store = (*Store)(nil)

func Open() *Store {
	return &Store{table: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if val, ok := s.table[key]; ok {
		return copyBytes(val), nil
	}
	return nil, core.ErrNotFound
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.table[key] = copyBytes(value)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.table, key)
	return nil
}

func (s *Store) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	keys := make([]string, 0, len(s.table))
	for key := range s.table {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Close() error { return nil }

// callers must not share the backing array with the table
func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/shandysiswandi/goexception/internal/catalog/entity"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
	names    map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		products: make(map[int64]entity.Product),
		names:    make(map[string]int64),
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *InMemoryStore) Create(ctx context.Context, p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.names[nameKey(p.Name)]; exists {
		return pkgerror.NewConflict("product name already exists")
	}
	if _, exists := s.products[p.ID]; exists {
		return pkgerror.NewConflict("product already exists")
	}

	s.products[p.ID] = p
	s.names[nameKey(p.Name)] = p.ID

	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, id int64) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return entity.Product{}, pkgerror.ErrNotFound
	}
	return p, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.products, id)
	delete(s.names, nameKey(p.Name))

	return nil
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b entity.Product) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}

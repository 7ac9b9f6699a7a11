package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
)

var _ ProductStore = (*MemoryStore)(nil)

// MemoryStore implements ProductStore using an in-memory map.
// Every operation holds the lock for its whole duration, so each call is atomic.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]db.Product
	nextID   int64
}

// NewMemoryStore creates an empty in-memory ProductStore. Identifiers start at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]db.Product),
		nextID:   1,
	}
}

// Insert creates a new product and returns it.
func (s *MemoryStore) Insert(_ context.Context, category, name string) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := db.Product{
		ID:       s.nextID,
		Category: category,
		Name:     name,
	}
	s.nextID++
	s.products[product.ID] = product

	return &product, nil
}

// FindByID retrieves a product by its ID.
func (s *MemoryStore) FindByID(_ context.Context, id int64) (*db.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindByCategory retrieves one page of products in the given category.
func (s *MemoryStore) FindByCategory(_ context.Context, category string, page, size int32) (*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]db.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	slices.SortFunc(matched, func(a, b db.Product) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.ID, b.ID))
	})

	total := int64(len(matched))
	start := int64(page) * int64(size)
	items := make([]db.Product, 0)
	if start < total {
		end := min(start+int64(size), total)
		items = append(items, matched[start:end]...)
	}
	return newPage(items, total, page, size), nil
}

// Update overwrites the stored product.
func (s *MemoryStore) Update(_ context.Context, product *db.Product) (*db.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID]; !exists {
		return nil, perrors.ErrProductNotFound
	}
	updated := *product
	s.products[updated.ID] = updated
	return &updated, nil
}

// Delete deletes a product by its ID.
func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return perrors.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// DistinctCategories returns the sorted set of categories.
func (s *MemoryStore) DistinctCategories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.products))
	categories := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	slices.Sort(categories)
	return categories, nil
}

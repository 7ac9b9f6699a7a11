package store

import (
	"context"
	"sync"
	"testing"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *MemoryStore, products ...db.Product) []db.Product {
	t.Helper()
	created := make([]db.Product, 0, len(products))
	for _, p := range products {
		c, err := s.Insert(context.Background(), p.Category, p.Name)
		require.NoError(t, err)
		created = append(created, *c)
	}
	return created
}

func TestMemoryStore_InsertAndFindByID(t *testing.T) {
	// given
	s := NewMemoryStore()
	ctx := context.Background()

	// when
	first, err := s.Insert(ctx, "books", "Dune")
	require.NoError(t, err)
	second, err := s.Insert(ctx, "books", "Foundation")
	require.NoError(t, err)

	// then
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *found)

	_, err = s.FindByID(ctx, 42)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestMemoryStore_FindByCategory(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s,
		db.Product{Category: "books", Name: "Dune"},
		db.Product{Category: "films", Name: "Alien"},
		db.Product{Category: "books", Name: "Foundation"},
		db.Product{Category: "books", Name: "Hyperion"},
	)

	testCases := []struct {
		name          string
		category      string
		page, size    int32
		expectedIDs   []int64
		expectedTotal int64
		expectedPages int32
	}{
		{name: "first page", category: "books", page: 0, size: 2, expectedIDs: []int64{1, 3}, expectedTotal: 3, expectedPages: 2},
		{name: "last partial page", category: "books", page: 1, size: 2, expectedIDs: []int64{4}, expectedTotal: 3, expectedPages: 2},
		{name: "page past the end", category: "books", page: 5, size: 2, expectedIDs: []int64{}, expectedTotal: 3, expectedPages: 2},
		{name: "single page", category: "books", page: 0, size: 10, expectedIDs: []int64{1, 3, 4}, expectedTotal: 3, expectedPages: 1},
		{name: "other category", category: "films", page: 0, size: 10, expectedIDs: []int64{2}, expectedTotal: 1, expectedPages: 1},
		{name: "unknown category", category: "games", page: 0, size: 10, expectedIDs: []int64{}, expectedTotal: 0, expectedPages: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			page, err := s.FindByCategory(context.Background(), tc.category, tc.page, tc.size)

			// then
			require.NoError(t, err)
			ids := make([]int64, 0, len(page.Items))
			for _, p := range page.Items {
				assert.Equal(t, tc.category, p.Category)
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			assert.Equal(t, tc.expectedTotal, page.TotalElements)
			assert.Equal(t, tc.expectedPages, page.TotalPages)
			assert.Equal(t, tc.page, page.Number)
		})
	}
}

func TestMemoryStore_Update(t *testing.T) {
	s := NewMemoryStore()
	created := seed(t, s, db.Product{Category: "books", Name: "Dune"})
	ctx := context.Background()

	t.Run("overwrites existing product", func(t *testing.T) {
		updated, err := s.Update(ctx, &db.Product{ID: created[0].ID, Category: "classics", Name: ""})
		require.NoError(t, err)
		assert.Equal(t, db.Product{ID: created[0].ID, Category: "classics", Name: ""}, *updated)

		found, err := s.FindByID(ctx, created[0].ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *found)
	})

	t.Run("unknown product", func(t *testing.T) {
		updated, err := s.Update(ctx, &db.Product{ID: 99, Category: "x"})
		assert.ErrorIs(t, err, perrors.ErrProductNotFound)
		assert.Nil(t, updated)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	created := seed(t, s, db.Product{Category: "books", Name: "Dune"})
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, created[0].ID))

	_, err := s.FindByID(ctx, created[0].ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created[0].ID), perrors.ErrProductNotFound)

	// identifiers are never reused
	next, err := s.Insert(ctx, "books", "Foundation")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestMemoryStore_DistinctCategories(t *testing.T) {
	s := NewMemoryStore()

	empty, err := s.DistinctCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, empty)

	seed(t, s,
		db.Product{Category: "films", Name: "Alien"},
		db.Product{Category: "books", Name: "Dune"},
		db.Product{Category: "books", Name: "Foundation"},
		db.Product{Category: "games", Name: "Doom"},
	)

	categories, err := s.DistinctCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"books", "films", "games"}, categories)
}

func TestMemoryStore_ConcurrentInsert(t *testing.T) {
	s := NewMemoryStore()
	const workers = 50

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Insert(context.Background(), "books", "Dune")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	page, err := s.FindByCategory(context.Background(), "books", 0, workers)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), page.TotalElements)
	seen := make(map[int64]bool, workers)
	for _, p := range page.Items {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

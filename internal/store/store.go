// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/catalog/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Insert adds a new product and returns it with the assigned identifier.
	Insert(ctx context.Context, category, name string) (*db.Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*db.Product, error)

	// FindByCategory returns one page of the products in category, ordered by category and then by ID.
	// page is zero-based, size must be positive.
	FindByCategory(ctx context.Context, category string, page, size int32) (*Page, error)

	// Update overwrites category and name of the stored product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product *db.Product) (*db.Product, error)

	// Delete removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Delete(ctx context.Context, id int64) error

	// DistinctCategories returns every stored category once, in ascending order.
	DistinctCategories(ctx context.Context) ([]string, error)
}

// Page is a bounded slice of an ordered result set.
type Page struct {
	Items         []db.Product
	TotalPages    int32
	TotalElements int64
	Number        int32
}

// newPage computes the pagination metadata for a page of items out of total elements.
func newPage(items []db.Product, total int64, page, size int32) *Page {
	var totalPages int32
	if size > 0 {
		totalPages = int32((total + int64(size) - 1) / int64(size))
	}
	return &Page{
		Items:         items,
		TotalPages:    totalPages,
		TotalElements: total,
		Number:        page,
	}
}

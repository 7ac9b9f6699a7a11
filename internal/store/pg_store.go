package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/abgdnv/catalog/internal/store/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ProductStore = (*PgStore)(nil)

// PgStore implements ProductStore using PostgreSQL as the data store.
// Statements run in autocommit mode at the server's default READ COMMITTED isolation.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// Insert adds a new product to the system.
// Returns an error if the product cannot be created.
func (p *PgStore) Insert(ctx context.Context, category, name string) (*db.Product, error) {
	product, err := p.q.Create(ctx, db.CreateParams{
		Category: category,
		Name:     name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) FindByID(ctx context.Context, id int64) (*db.Product, error) {
	product, err := p.q.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindByCategory retrieves one page of products in the given category.
func (p *PgStore) FindByCategory(ctx context.Context, category string, page, size int32) (*Page, error) {
	offset := int64(page) * int64(size)
	if offset > math.MaxInt32 {
		return nil, fmt.Errorf("page %d of size %d is out of range", page, size)
	}
	total, err := p.q.CountByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}
	products, err := p.q.FindByCategory(ctx, db.FindByCategoryParams{
		Category: category,
		Limit:    size,
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}
	return newPage(products, total, page, size), nil
}

// Update modifies an existing product's details.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Update(ctx context.Context, product *db.Product) (*db.Product, error) {
	updated, err := p.q.Update(ctx, db.UpdateParams{
		ID:       product.ID,
		Category: product.Category,
		Name:     product.Name,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

// Delete removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgStore) Delete(ctx context.Context, id int64) error {
	count, err := p.q.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if count == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// DistinctCategories retrieves the distinct category values of all products.
func (p *PgStore) DistinctCategories(ctx context.Context) ([]string, error) {
	categories, err := p.q.FindDistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find distinct categories: %w", err)
	}
	return categories, nil
}

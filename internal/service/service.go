// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"

	"github.com/abgdnv/catalog/internal/domain"
	"github.com/abgdnv/catalog/internal/store"
	"github.com/abgdnv/catalog/internal/store/db"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// GetByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	GetByID(ctx context.Context, id int64) (*ProductDto, error)

	// Create adds a new product and returns it with the assigned identifier.
	Create(ctx context.Context, req CreateProductRequest) (*ProductDto, error)

	// Update replaces category and name of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, req UpdateProductRequest) (*ProductDto, error)

	// Delete removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Delete(ctx context.Context, id int64) error

	// ListByCategory returns one page of the products in a category, ordered by category.
	ListByCategory(ctx context.Context, req ListProductsRequest) (*ProductListResponse, error)

	// ListUniqueCategories returns every category in use exactly once.
	ListUniqueCategories(ctx context.Context) ([]string, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository     store.ProductStore
	createdCounter metric.Int64Counter
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	meter := otel.Meter("catalog")
	createdCounter, err := meter.Int64Counter("products_created", metric.WithDescription("Total number of created products"))
	if err != nil {
		panic(fmt.Sprintf("failed to create products_created counter: %v", err))
	}
	return &Service{
		repository:     repo,
		createdCounter: createdCounter,
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// CreateProductRequest carries the fields of a product to be created.
type CreateProductRequest struct {
	Category string `json:"category" validate:"required,max=255"`
	Name     string `json:"name"     validate:"max=255"`
}

// UpdateProductRequest carries the full new state of an existing product.
type UpdateProductRequest struct {
	ID       int64  `json:"id"       validate:"required,min=1"`
	Category string `json:"category" validate:"required,max=255"`
	Name     string `json:"name"     validate:"max=255"`
}

// ListProductsRequest selects a zero-based page of a category.
type ListProductsRequest struct {
	Category string `json:"category" validate:"required"`
	Page     int32  `json:"page"     validate:"min=0"`
	Size     int32  `json:"size"     validate:"required,min=1,max=1000"`
}

// ProductListResponse is a page of products with its pagination metadata.
type ProductListResponse struct {
	Items         []ProductDto `json:"items"`
	TotalPages    int32        `json:"totalPages"`
	TotalElements int64        `json:"totalElements"`
	CurrentPage   int32        `json:"currentPage"`
}

// GetByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*ProductDto, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDto(product), nil
}

// Create creates a new product and returns it as a ProductDto.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*ProductDto, error) {
	product, err := domain.NewProduct(req.Category, req.Name)
	if err != nil {
		return nil, err
	}
	stored, err := s.repository.Insert(ctx, product.Category(), product.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.createdCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("category", stored.Category)))

	return toDto(fromRow(stored)), nil
}

// Update overwrites category and name of an existing product.
// Returns ErrProductNotFound if the product does not exist or vanished before the write.
func (s *Service) Update(ctx context.Context, req UpdateProductRequest) (*ProductDto, error) {
	product, err := s.getProduct(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Category, req.Name); err != nil {
		return nil, err
	}
	updated, err := s.repository.Update(ctx, &db.Product{
		ID:       product.ID(),
		Category: product.Category(),
		Name:     product.Name(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %d: %w", req.ID, err)
	}

	return toDto(fromRow(updated)), nil
}

// Delete deletes a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.getProduct(ctx, id); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %d: %w", id, err)
	}
	return nil
}

// ListByCategory retrieves one page of products in the requested category.
func (s *Service) ListByCategory(ctx context.Context, req ListProductsRequest) (*ProductListResponse, error) {
	page, err := s.repository.FindByCategory(ctx, req.Category, req.Page, req.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list products of category %q: %w", req.Category, err)
	}
	items := make([]ProductDto, len(page.Items))
	for i, item := range page.Items {
		items[i] = *toDto(fromRow(&item))
	}

	return &ProductListResponse{
		Items:         items,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		CurrentPage:   page.Number,
	}, nil
}

// ListUniqueCategories returns the distinct categories of all stored products.
func (s *Service) ListUniqueCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repository.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// getProduct loads a product or fails with ErrProductNotFound.
func (s *Service) getProduct(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %d: %w", id, err)
	}
	return fromRow(row), nil
}

func fromRow(row *db.Product) *domain.Product {
	return domain.Restore(row.ID, row.Category, row.Name)
}

func toDto(product *domain.Product) *ProductDto {
	return &ProductDto{
		ID:       product.ID(),
		Category: product.Category(),
		Name:     product.Name(),
	}
}

// Package domain holds the Product aggregate. Field changes go through its
// methods so that the category invariant is checked on every mutation.
package domain

import (
	"fmt"
	"strings"

	perrors "github.com/abgdnv/catalog/internal/errors"
)

// Product is a catalog entry. The zero ID means the product has not been stored yet.
type Product struct {
	id       int64
	category string
	name     string
}

// NewProduct builds a product that has not been persisted yet.
func NewProduct(category, name string) (*Product, error) {
	p := &Product{}
	if err := p.Update(category, name); err != nil {
		return nil, err
	}
	return p, nil
}

// Restore rehydrates a stored product without re-validating it.
func Restore(id int64, category, name string) *Product {
	return &Product{id: id, category: category, name: name}
}

func (p *Product) ID() int64        { return p.id }
func (p *Product) Category() string { return p.category }
func (p *Product) Name() string     { return p.name }

// Update replaces both category and name. The name may be empty; the category may not.
func (p *Product) Update(category, name string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category must not be blank", perrors.ErrInvalidProduct)
	}
	p.category = category
	p.name = name
	return nil
}

package domain

import (
	"testing"

	perrors "github.com/abgdnv/catalog/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		productName string
		expectError error
	}{
		{name: "Success", category: "books", productName: "Dune"},
		{name: "Success - empty name", category: "books", productName: ""},
		{name: "Error - empty category", category: "", productName: "Dune", expectError: perrors.ErrInvalidProduct},
		{name: "Error - blank category", category: "  \t", productName: "Dune", expectError: perrors.ErrInvalidProduct},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			p, err := NewProduct(tc.category, tc.productName)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Zero(t, p.ID())
			assert.Equal(t, tc.category, p.Category())
			assert.Equal(t, tc.productName, p.Name())
		})
	}
}

func TestProduct_Update(t *testing.T) {
	t.Run("overwrites both fields", func(t *testing.T) {
		p := Restore(7, "books", "Dune")

		require.NoError(t, p.Update("films", ""))

		assert.Equal(t, int64(7), p.ID())
		assert.Equal(t, "films", p.Category())
		assert.Empty(t, p.Name())
	})

	t.Run("rejects blank category and keeps state", func(t *testing.T) {
		p := Restore(7, "books", "Dune")

		err := p.Update(" ", "Foundation")

		assert.ErrorIs(t, err, perrors.ErrInvalidProduct)
		assert.Equal(t, "books", p.Category())
		assert.Equal(t, "Dune", p.Name())
	})
}

package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/catalog/domain"
	"github.com/badjuice/storefront/internal/catalog/repository"
)

func TestDefaultCatalog(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()

	products := repo.FindAll()
	require.Equal(t, 6, repo.Count())
	require.Len(t, products, 6)

	// Definition order is display order.
	assert.Equal(t, "BLOOD ORANGE", products[0].Name)
	assert.Equal(t, "VOID JACKET", products[5].Name)

	for _, p := range products {
		assert.True(t, p.Category.IsValid())
		assert.GreaterOrEqual(t, p.Price, 0)
	}
}

func TestFindByID(t *testing.T) {
	repo := repository.NewMemoryCatalogRepository()

	product, err := repo.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, "ARCHIVE HOODIE", product.Name)
	assert.Equal(t, 2500, product.Price)

	_, err = repo.FindByID(99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

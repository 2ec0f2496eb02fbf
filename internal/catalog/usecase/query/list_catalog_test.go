package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/catalog/domain"
	"github.com/badjuice/storefront/internal/catalog/repository"
	"github.com/badjuice/storefront/internal/catalog/usecase/query"
)

// stubRatings is a fixed rating source for filter tests
type stubRatings struct {
	averages map[int]float64
	counts   map[int]int
}

func (s stubRatings) AverageRating(productID int) float64 { return s.averages[productID] }
func (s stubRatings) ReviewCount(productID int) int       { return s.counts[productID] }

var testProducts = []domain.Product{
	{ID: 1, Name: "BLOOD ORANGE", Price: 350, Category: domain.CategoryJuice},
	{ID: 2, Name: "DARK CHERRY", Price: 380, Category: domain.CategoryJuice},
	{ID: 3, Name: "ARCHIVE HOODIE", Price: 2500, Category: domain.CategoryClothing},
}

func newHandler(ratings domain.RatingSource) *query.ListCatalogHandler {
	repo := repository.NewMemoryCatalogRepositoryWithProducts(testProducts)
	return query.NewListCatalogHandler(repo, ratings)
}

func TestListCatalogNoFiltersReturnsFullCatalogInOrder(t *testing.T) {
	handler := newHandler(stubRatings{})

	result := handler.Handle(query.ListCatalogQuery{})

	require.Len(t, result, len(testProducts))
	for i, p := range testProducts {
		assert.Equal(t, p.ID, result[i].ID)
	}
}

func TestListCatalogCategoryFilter(t *testing.T) {
	handler := newHandler(stubRatings{})

	juices := handler.Handle(query.ListCatalogQuery{Category: domain.CategoryJuice})
	require.Len(t, juices, 2)
	assert.Equal(t, 1, juices[0].ID)
	assert.Equal(t, 2, juices[1].ID)

	clothing := handler.Handle(query.ListCatalogQuery{Category: domain.CategoryClothing})
	require.Len(t, clothing, 1)
	assert.Equal(t, 3, clothing[0].ID)
}

func TestListCatalogRatingFilterComposesWithCategory(t *testing.T) {
	// Product 1 has reviews rated 5 and 3 (mean 4.0); the others have
	// no reviews at all.
	ratings := stubRatings{
		averages: map[int]float64{1: 4.0},
		counts:   map[int]int{1: 2},
	}
	handler := newHandler(ratings)

	result := handler.Handle(query.ListCatalogQuery{
		Category:  domain.CategoryJuice,
		MinRating: 4,
	})
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)
	assert.Equal(t, 4.0, result[0].AverageRating)
	assert.Equal(t, 2, result[0].ReviewCount)

	assert.Empty(t, handler.Handle(query.ListCatalogQuery{
		Category:  domain.CategoryClothing,
		MinRating: 4,
	}))
}

func TestListCatalogRatingFilterAlone(t *testing.T) {
	ratings := stubRatings{
		averages: map[int]float64{1: 2.5, 2: 3.0, 3: 4.5},
	}
	handler := newHandler(ratings)

	result := handler.Handle(query.ListCatalogQuery{MinRating: 3})

	require.Len(t, result, 2)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 3, result[1].ID)
}

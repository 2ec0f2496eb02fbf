package query

import (
	"fmt"

	"github.com/badjuice/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ID int
}

// GetProductHandler handles single product lookup
type GetProductHandler struct {
	repo    domain.CatalogRepository
	ratings domain.RatingSource
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository, ratings domain.RatingSource) *GetProductHandler {
	return &GetProductHandler{repo: repo, ratings: ratings}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(query GetProductQuery) (*RatedProduct, error) {
	product, err := h.repo.FindByID(query.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &RatedProduct{
		Product:       *product,
		AverageRating: h.ratings.AverageRating(product.ID),
		ReviewCount:   h.ratings.ReviewCount(product.ID),
	}, nil
}

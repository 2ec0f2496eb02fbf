package query

import (
	"github.com/badjuice/storefront/internal/review/domain"
)

// ListReviewsQuery represents the query to list reviews for a product
type ListReviewsQuery struct {
	ProductID int
}

// ListReviewsHandler handles review listing
type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

// NewListReviewsHandler creates a new list reviews handler
func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

// Handle returns the product's reviews in insertion order. An unknown
// product id yields an empty list, not an error.
func (h *ListReviewsHandler) Handle(query ListReviewsQuery) []domain.Review {
	return h.repo.FindByProductID(query.ProductID)
}

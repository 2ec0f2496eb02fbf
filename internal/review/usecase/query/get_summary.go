package query

import (
	"github.com/badjuice/storefront/internal/review/domain"
)

// GetSummaryQuery represents the query for a product's aggregate rating
type GetSummaryQuery struct {
	ProductID int
}

// GetSummaryHandler handles aggregate rating queries
type GetSummaryHandler struct {
	repo domain.ReviewRepository
}

// NewGetSummaryHandler creates a new get summary handler
func NewGetSummaryHandler(repo domain.ReviewRepository) *GetSummaryHandler {
	return &GetSummaryHandler{repo: repo}
}

// Handle recomputes the aggregate from the current store contents
func (h *GetSummaryHandler) Handle(query GetSummaryQuery) domain.ReviewSummary {
	return h.repo.Summary(query.ProductID)
}

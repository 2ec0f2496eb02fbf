package query

import (
	"github.com/badjuice/storefront/internal/catalog/domain"
)

// CategoryAll disables the category predicate; MinRatingAll disables the
// rating predicate.
const (
	CategoryAll  = ""
	MinRatingAll = 0
)

// ListCatalogQuery represents the query for the filtered shop view
type ListCatalogQuery struct {
	Category  domain.Category // CategoryAll, juice or clothing
	MinRating float64         // MinRatingAll or a threshold (2, 3, 4)
}

// RatedProduct is a catalog entry joined with its live review aggregate
type RatedProduct struct {
	domain.Product
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// ListCatalogHandler handles the filtered catalog query
type ListCatalogHandler struct {
	repo    domain.CatalogRepository
	ratings domain.RatingSource
}

// NewListCatalogHandler creates a new list catalog handler
func NewListCatalogHandler(repo domain.CatalogRepository, ratings domain.RatingSource) *ListCatalogHandler {
	return &ListCatalogHandler{repo: repo, ratings: ratings}
}

// Handle executes the filtered catalog query. The category and minimum
// rating predicates are independent and compose by conjunction; catalog
// definition order is preserved. With both filters disabled the full
// catalog is returned unmodified.
func (h *ListCatalogHandler) Handle(query ListCatalogQuery) []RatedProduct {
	products := h.repo.FindAll()

	result := make([]RatedProduct, 0, len(products))
	for _, p := range products {
		if query.Category != CategoryAll && p.Category != query.Category {
			continue
		}

		avg := h.ratings.AverageRating(p.ID)
		if query.MinRating != MinRatingAll && avg < query.MinRating {
			continue
		}

		result = append(result, RatedProduct{
			Product:       p,
			AverageRating: avg,
			ReviewCount:   h.ratings.ReviewCount(p.ID),
		})
	}

	return result
}

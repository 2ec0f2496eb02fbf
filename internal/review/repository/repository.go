package repository

import (
	"sync"
	"time"

	"github.com/badjuice/storefront/internal/review/domain"
)

// MemoryReviewRepository is an append-only in-memory review store.
// Reviews live for the process lifetime only. A mutex serializes
// mutations so each operation runs to completion before the next
// is observed.
type MemoryReviewRepository struct {
	mu        sync.RWMutex
	reviews   []domain.Review
	byProduct map[int][]int // product id -> indexes into reviews, insertion order
	lastID    int64
}

// NewMemoryReviewRepository creates an empty review store
func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{
		byProduct: make(map[int][]int),
	}
}

// Append stores a new review, assigning a unique monotonic id and the
// creation date
func (r *MemoryReviewRepository) Append(review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Timestamp-derived ids, bumped when two submissions land in the
	// same millisecond.
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	review.ID = id
	review.Date = time.Now()

	r.reviews = append(r.reviews, *review)
	r.byProduct[review.ProductID] = append(r.byProduct[review.ProductID], len(r.reviews)-1)
	return nil
}

// FindByProductID returns all reviews for a product in insertion order
func (r *MemoryReviewRepository) FindByProductID(productID int) []domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := r.byProduct[productID]
	out := make([]domain.Review, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.reviews[i])
	}
	return out
}

// Summary recomputes the aggregate rating from the current store
// contents. Zero value when the product has no reviews.
func (r *MemoryReviewRepository) Summary(productID int) domain.ReviewSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	indexes := r.byProduct[productID]
	if len(indexes) == 0 {
		return domain.ReviewSummary{}
	}

	sum := 0
	for _, i := range indexes {
		sum += r.reviews[i].Rating
	}

	return domain.ReviewSummary{
		Average: domain.RoundRating(float64(sum) / float64(len(indexes))),
		Count:   len(indexes),
	}
}

// Count returns the total number of stored reviews
func (r *MemoryReviewRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reviews)
}

// AverageRating implements the catalog's rating source
func (r *MemoryReviewRepository) AverageRating(productID int) float64 {
	return r.Summary(productID).Average
}

// ReviewCount implements the catalog's rating source
func (r *MemoryReviewRepository) ReviewCount(productID int) int {
	return r.Summary(productID).Count
}

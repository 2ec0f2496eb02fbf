package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/review/domain"
	"github.com/badjuice/storefront/internal/review/repository"
)

func appendReview(t *testing.T, repo *repository.MemoryReviewRepository, productID, rating int) domain.Review {
	t.Helper()
	review := &domain.Review{ProductID: productID, Author: "v", Rating: rating, Comment: "ok"}
	require.NoError(t, repo.Append(review))
	return *review
}

func TestAppendAssignsMonotonicIDsAndDate(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()

	first := appendReview(t, repo, 1, 5)
	second := appendReview(t, repo, 1, 3)

	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.Date.IsZero())
}

func TestFindByProductIDInsertionOrder(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()

	appendReview(t, repo, 1, 5)
	appendReview(t, repo, 2, 2)
	appendReview(t, repo, 1, 3)

	reviews := repo.FindByProductID(1)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 3, reviews[1].Rating)

	assert.Empty(t, repo.FindByProductID(42))
}

func TestSummary(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()

	// No reviews: zero value aggregate.
	assert.Equal(t, domain.ReviewSummary{}, repo.Summary(1))

	appendReview(t, repo, 1, 5)
	appendReview(t, repo, 1, 3)

	summary := repo.Summary(1)
	assert.Equal(t, 4.0, summary.Average)
	assert.Equal(t, 2, summary.Count)

	// Recomputation is idempotent.
	assert.Equal(t, summary, repo.Summary(1))
}

func TestSummarySingleReviewIsExactRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		repo := repository.NewMemoryReviewRepository()
		appendReview(t, repo, 7, rating)

		summary := repo.Summary(7)
		assert.Equal(t, float64(rating), summary.Average)
		assert.Equal(t, 1, summary.Count)
	}
}

func TestSummaryRoundsHalfUp(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()

	// 4, 5, 4 -> mean 4.3333 -> 4.3
	appendReview(t, repo, 1, 4)
	appendReview(t, repo, 1, 5)
	appendReview(t, repo, 1, 4)
	assert.Equal(t, 4.3, repo.Summary(1).Average)

	// 1, 2 -> mean 1.5 -> 1.5; 1, 2, 2 -> 1.6667 -> 1.7
	appendReview(t, repo, 2, 1)
	appendReview(t, repo, 2, 2)
	assert.Equal(t, 1.5, repo.Summary(2).Average)
	appendReview(t, repo, 2, 2)
	assert.Equal(t, 1.7, repo.Summary(2).Average)
}

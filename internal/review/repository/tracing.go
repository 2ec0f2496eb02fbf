package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/badjuice/storefront/internal/review/domain"
)

var tracer = otel.Tracer("review-repository")

// MemoryReviewRepositoryWithTracing wraps MemoryReviewRepository with tracing
type MemoryReviewRepositoryWithTracing struct {
	*MemoryReviewRepository
}

// NewMemoryReviewRepositoryWithTracing creates a new review store with tracing
func NewMemoryReviewRepositoryWithTracing() *MemoryReviewRepositoryWithTracing {
	return &MemoryReviewRepositoryWithTracing{
		MemoryReviewRepository: NewMemoryReviewRepository(),
	}
}

// AppendWithContext stores a review with tracing
func (r *MemoryReviewRepositoryWithTracing) AppendWithContext(ctx context.Context, review *domain.Review) error {
	_, span := tracer.Start(ctx, "repository.Append",
		trace.WithAttributes(
			attribute.Int("review.product_id", review.ProductID),
			attribute.Int("review.rating", review.Rating),
		),
	)
	defer span.End()

	err := r.MemoryReviewRepository.Append(review)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int64("review.id", review.ID))
	return nil
}

// FindByProductIDWithContext lists reviews with tracing
func (r *MemoryReviewRepositoryWithTracing) FindByProductIDWithContext(ctx context.Context, productID int) []domain.Review {
	_, span := tracer.Start(ctx, "repository.FindByProductID",
		trace.WithAttributes(
			attribute.Int("review.product_id", productID),
		),
	)
	defer span.End()

	reviews := r.MemoryReviewRepository.FindByProductID(productID)
	span.SetAttributes(attribute.Int("result.count", len(reviews)))
	return reviews
}

// SummaryWithContext computes the aggregate rating with tracing
func (r *MemoryReviewRepositoryWithTracing) SummaryWithContext(ctx context.Context, productID int) domain.ReviewSummary {
	_, span := tracer.Start(ctx, "repository.Summary",
		trace.WithAttributes(
			attribute.Int("review.product_id", productID),
		),
	)
	defer span.End()

	summary := r.MemoryReviewRepository.Summary(productID)
	span.SetAttributes(
		attribute.Float64("result.average", summary.Average),
		attribute.Int("result.count", summary.Count),
	)
	return summary
}

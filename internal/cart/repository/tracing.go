package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/badjuice/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// MemoryCartRepositoryWithTracing wraps MemoryCartRepository with tracing
type MemoryCartRepositoryWithTracing struct {
	*MemoryCartRepository
}

// NewMemoryCartRepositoryWithTracing creates a new cart with tracing
func NewMemoryCartRepositoryWithTracing() *MemoryCartRepositoryWithTracing {
	return &MemoryCartRepositoryWithTracing{
		MemoryCartRepository: NewMemoryCartRepository(),
	}
}

// AddItemWithContext merges one unit into the cart with tracing
func (r *MemoryCartRepositoryWithTracing) AddItemWithContext(ctx context.Context, productID int) {
	_, span := tracer.Start(ctx, "repository.AddItem",
		trace.WithAttributes(
			attribute.Int("cart.product_id", productID),
		),
	)
	defer span.End()

	r.MemoryCartRepository.AddItem(productID)
	span.SetAttributes(attribute.Int("cart.line_count", r.LineCount()))
}

// UpdateQuantityWithContext sets a line quantity with tracing
func (r *MemoryCartRepositoryWithTracing) UpdateQuantityWithContext(ctx context.Context, productID, quantity int) {
	_, span := tracer.Start(ctx, "repository.UpdateQuantity",
		trace.WithAttributes(
			attribute.Int("cart.product_id", productID),
			attribute.Int("cart.quantity", quantity),
		),
	)
	defer span.End()

	r.MemoryCartRepository.UpdateQuantity(productID, quantity)
	span.SetAttributes(attribute.Int("cart.line_count", r.LineCount()))
}

// RemoveItemWithContext deletes a line with tracing
func (r *MemoryCartRepositoryWithTracing) RemoveItemWithContext(ctx context.Context, productID int) {
	_, span := tracer.Start(ctx, "repository.RemoveItem",
		trace.WithAttributes(
			attribute.Int("cart.product_id", productID),
		),
	)
	defer span.End()

	r.MemoryCartRepository.RemoveItem(productID)
	span.SetAttributes(attribute.Int("cart.line_count", r.LineCount()))
}

// LinesWithContext lists the cart lines with tracing
func (r *MemoryCartRepositoryWithTracing) LinesWithContext(ctx context.Context) []domain.CartLine {
	_, span := tracer.Start(ctx, "repository.Lines")
	defer span.End()

	lines := r.MemoryCartRepository.Lines()
	span.SetAttributes(attribute.Int("result.count", len(lines)))
	return lines
}

package repository

import (
	"sync"

	"github.com/badjuice/storefront/internal/cart/domain"
)

// MemoryCartRepository holds the single session cart in memory. The
// mutex gives run-to-completion semantics under the concurrent HTTP
// listener: each mutation finishes before the next one is observed.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

// NewMemoryCartRepository creates an empty cart
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

func (r *MemoryCartRepository) AddItem(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].ProductID == productID {
			r.lines[i].Quantity++
			return
		}
	}
	r.lines = append(r.lines, domain.CartLine{ProductID: productID, Quantity: 1})
}

func (r *MemoryCartRepository) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		r.RemoveItem(productID)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].ProductID == productID {
			r.lines[i].Quantity = quantity
			return
		}
	}
}

func (r *MemoryCartRepository) RemoveItem(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].ProductID == productID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return
		}
	}
}

func (r *MemoryCartRepository) Lines() []domain.CartLine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CartLine, len(r.lines))
	copy(out, r.lines)
	return out
}

func (r *MemoryCartRepository) LineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lines)
}

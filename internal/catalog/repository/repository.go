package repository

import (
	"github.com/badjuice/storefront/internal/catalog/domain"
)

// defaultProducts is the fixed storefront assortment. Definition order
// is display order.
var defaultProducts = []domain.Product{
	{ID: 1, Name: "BLOOD ORANGE", Price: 350, Category: domain.CategoryJuice, Image: "🩸"},
	{ID: 2, Name: "DARK CHERRY", Price: 380, Category: domain.CategoryJuice, Image: "🍒"},
	{ID: 3, Name: "ARCHIVE HOODIE", Price: 2500, Category: domain.CategoryClothing, Image: "🩸"},
	{ID: 4, Name: "GLITCH TEE", Price: 1500, Category: domain.CategoryClothing, Image: "⚡"},
	{ID: 5, Name: "ROTTEN APPLE", Price: 320, Category: domain.CategoryJuice, Image: "🍎"},
	{ID: 6, Name: "VOID JACKET", Price: 4500, Category: domain.CategoryClothing, Image: "🌑"},
}

// MemoryCatalogRepository serves the static product catalog. The catalog
// is immutable, so reads need no synchronization.
type MemoryCatalogRepository struct {
	products []domain.Product
	byID     map[int]*domain.Product
}

// NewMemoryCatalogRepository creates a catalog repository seeded with the
// storefront assortment
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return NewMemoryCatalogRepositoryWithProducts(defaultProducts)
}

// NewMemoryCatalogRepositoryWithProducts creates a catalog repository with
// a custom product list (used by tests)
func NewMemoryCatalogRepositoryWithProducts(products []domain.Product) *MemoryCatalogRepository {
	r := &MemoryCatalogRepository{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int]*domain.Product, len(products)),
	}
	copy(r.products, products)
	for i := range r.products {
		r.byID[r.products[i].ID] = &r.products[i]
	}
	return r
}

func (r *MemoryCatalogRepository) FindByID(id int) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

// FindAll returns the catalog in definition order
func (r *MemoryCatalogRepository) FindAll() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *MemoryCatalogRepository) Count() int {
	return len(r.products)
}

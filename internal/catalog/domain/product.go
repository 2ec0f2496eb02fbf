package domain

import "errors"

// Category classifies a product in the storefront
type Category string

const (
	CategoryJuice    Category = "juice"
	CategoryClothing Category = "clothing"
)

// IsValid reports whether the category is one the storefront sells
func (c Category) IsValid() bool {
	return c == CategoryJuice || c == CategoryClothing
}

// Product represents a purchasable item in the storefront catalog.
// Prices are in the minor currency unit. Products are immutable for
// the process lifetime.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
}

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository defines the contract for catalog access
type CatalogRepository interface {
	FindByID(id int) (*Product, error)
	FindAll() []Product
	Count() int
}

// RatingSource supplies live review aggregates for catalog views.
// Implemented by the review store; aggregates are recomputed on every
// call, never cached.
type RatingSource interface {
	AverageRating(productID int) float64
	ReviewCount(productID int) int
}

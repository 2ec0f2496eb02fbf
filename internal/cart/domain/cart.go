package domain

import "errors"

// CartLine is one product's accumulated quantity in the shopping cart.
// Quantity is always strictly positive: a line whose quantity would
// drop to zero or below is removed, never stored.
type CartLine struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Checkout validation errors
var (
	ErrNameRequired    = errors.New("name is required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrAddressRequired = errors.New("address is required")
)

// CartRepository defines the contract for the session cart. There is
// exactly one cart per process: one page view, one cart. Line order is
// insertion order (oldest added first) and survives quantity updates.
type CartRepository interface {
	// AddItem merges one unit into an existing line or appends a new
	// line with quantity 1
	AddItem(productID int)

	// UpdateQuantity sets a line's quantity to an absolute value.
	// Quantity <= 0 removes the line. Unknown product ids are no-ops
	// and never create a line.
	UpdateQuantity(productID, quantity int)

	// RemoveItem deletes the line if present, no-op otherwise
	RemoveItem(productID int)

	// Lines returns the cart lines in insertion order
	Lines() []CartLine

	// LineCount returns the number of distinct product lines
	LineCount() int
}

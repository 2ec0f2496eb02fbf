package command

import (
	"github.com/badjuice/storefront/internal/cart/domain"
)

// UpdateQuantityCommand represents the command to set a cart line's
// quantity to an absolute value
type UpdateQuantityCommand struct {
	ProductID int
	Quantity  int
}

// UpdateQuantityHandler handles quantity updates
type UpdateQuantityHandler struct {
	cart domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(cart domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{cart: cart}
}

// Handle executes the update quantity command. Quantity <= 0 removes
// the line; a product not in the cart stays out of it.
func (h *UpdateQuantityHandler) Handle(cmd UpdateQuantityCommand) error {
	h.cart.UpdateQuantity(cmd.ProductID, cmd.Quantity)
	return nil
}

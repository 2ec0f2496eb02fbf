package command

import (
	"github.com/badjuice/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to delete a cart line
type RemoveItemCommand struct {
	ProductID int
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	cart domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(cart domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{cart: cart}
}

// Handle executes the remove item command, a no-op when the line does
// not exist
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) error {
	h.cart.RemoveItem(cmd.ProductID)
	return nil
}

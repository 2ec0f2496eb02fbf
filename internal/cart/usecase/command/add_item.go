package command

import (
	cartdomain "github.com/badjuice/storefront/internal/cart/domain"
	catalogdomain "github.com/badjuice/storefront/internal/catalog/domain"
	"github.com/badjuice/storefront/pkg/logger"
)

// AddItemCommand represents the command to add one unit of a product
// to the cart
type AddItemCommand struct {
	ProductID int
}

// AddItemHandler handles cart additions
type AddItemHandler struct {
	cart    cartdomain.CartRepository
	catalog catalogdomain.CatalogRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cart cartdomain.CartRepository, catalog catalogdomain.CatalogRepository) *AddItemHandler {
	return &AddItemHandler{cart: cart, catalog: catalog}
}

// Handle executes the add item command. An existing line gains one
// unit; otherwise a new line with quantity 1 is appended after the
// existing lines. Unknown product ids are silent no-ops.
func (h *AddItemHandler) Handle(cmd AddItemCommand) error {
	if _, err := h.catalog.FindByID(cmd.ProductID); err != nil {
		logger.Logger.Debug().
			Int("product_id", cmd.ProductID).
			Msg("Ignoring add to cart for unknown product")
		return nil
	}

	h.cart.AddItem(cmd.ProductID)
	return nil
}

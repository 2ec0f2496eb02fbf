package command

import (
	"strings"

	"github.com/google/uuid"

	"github.com/badjuice/storefront/internal/cart/domain"
	"github.com/badjuice/storefront/pkg/logger"
)

// CheckoutCommand carries the delivery details collected by the
// checkout form
type CheckoutCommand struct {
	Name    string
	Phone   string
	Address string
}

// CheckoutResult is the acknowledgement returned to the shopper. The
// reference exists only for this page view; nothing is transmitted or
// persisted.
type CheckoutResult struct {
	OrderRef  string `json:"order_ref"`
	LineCount int    `json:"line_count"`
}

// CheckoutHandler handles the terminal checkout action
type CheckoutHandler struct {
	cart domain.CartRepository
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cart domain.CartRepository) *CheckoutHandler {
	return &CheckoutHandler{cart: cart}
}

// Handle validates the delivery details and acknowledges the order
// intent. The cart is left unchanged and no order leaves the process.
func (h *CheckoutHandler) Handle(cmd CheckoutCommand) (*CheckoutResult, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	if strings.TrimSpace(cmd.Phone) == "" {
		return nil, domain.ErrPhoneRequired
	}
	if strings.TrimSpace(cmd.Address) == "" {
		return nil, domain.ErrAddressRequired
	}

	result := &CheckoutResult{
		OrderRef:  uuid.New().String(),
		LineCount: h.cart.LineCount(),
	}

	logger.Logger.Info().
		Str("order_ref", result.OrderRef).
		Int("line_count", result.LineCount).
		Msg("Checkout submitted")

	return result, nil
}

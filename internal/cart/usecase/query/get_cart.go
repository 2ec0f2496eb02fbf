package query

import (
	cartdomain "github.com/badjuice/storefront/internal/cart/domain"
	catalogdomain "github.com/badjuice/storefront/internal/catalog/domain"
)

// GetCartQuery represents the query for the current cart view
type GetCartQuery struct{}

// CartLineView is a cart line joined with catalog data. LineTotal is
// derived from the catalog price at read time.
type CartLineView struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

// CartView is the full cart as rendered by the cart sheet
type CartView struct {
	Lines      []CartLineView `json:"lines"`
	TotalPrice int            `json:"total_price"`
	LineCount  int            `json:"line_count"`
}

// GetCartHandler handles the cart view query
type GetCartHandler struct {
	cart    cartdomain.CartRepository
	catalog catalogdomain.CatalogRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cart cartdomain.CartRepository, catalog catalogdomain.CatalogRepository) *GetCartHandler {
	return &GetCartHandler{cart: cart, catalog: catalog}
}

// Handle builds the cart view. The total is recomputed from the lines
// on every read so it can never drift from the cart contents.
func (h *GetCartHandler) Handle(query GetCartQuery) CartView {
	lines := h.cart.Lines()

	view := CartView{Lines: make([]CartLineView, 0, len(lines))}
	for _, line := range lines {
		product, err := h.catalog.FindByID(line.ProductID)
		if err != nil {
			continue
		}

		lineTotal := product.Price * line.Quantity
		view.Lines = append(view.Lines, CartLineView{
			ProductID: line.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		view.TotalPrice += lineTotal
	}

	view.LineCount = len(view.Lines)
	return view
}

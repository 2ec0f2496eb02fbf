//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"

	catalogdomain "github.com/badjuice/storefront/internal/catalog/domain"

	"github.com/badjuice/storefront/internal/cart/delivery/http"
	"github.com/badjuice/storefront/internal/cart/domain"
	"github.com/badjuice/storefront/internal/cart/usecase/command"
	"github.com/badjuice/storefront/internal/cart/usecase/query"
)

// Command Handlers Providers
func ProvideAddItemHandler(cart domain.CartRepository, catalog catalogdomain.CatalogRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(cart, catalog)
}

func ProvideUpdateQuantityHandler(cart domain.CartRepository) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(cart)
}

func ProvideRemoveItemHandler(cart domain.CartRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(cart)
}

func ProvideCheckoutHandler(cart domain.CartRepository) *command.CheckoutHandler {
	return command.NewCheckoutHandler(cart)
}

// Query Handlers Providers
func ProvideGetCartHandler(cart domain.CartRepository, catalog catalogdomain.CatalogRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(cart, catalog)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideUpdateQuantityHandler,
	ProvideRemoveItemHandler,
	ProvideCheckoutHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
)

// InitializeHTTPHandler initializes the cart HTTP handler with all dependencies
func InitializeHTTPHandler(cart domain.CartRepository, catalog catalogdomain.CatalogRepository) (*http.CartHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewCartHandlerWithDI,
	)
	return nil, nil
}

//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/badjuice/storefront/internal/catalog/delivery/http"
	"github.com/badjuice/storefront/internal/catalog/domain"
	"github.com/badjuice/storefront/internal/catalog/usecase/query"
)

// Query Handlers Providers
func ProvideListCatalogHandler(repo domain.CatalogRepository, ratings domain.RatingSource) *query.ListCatalogHandler {
	return query.NewListCatalogHandler(repo, ratings)
}

func ProvideGetProductHandler(repo domain.CatalogRepository, ratings domain.RatingSource) *query.GetProductHandler {
	return query.NewGetProductHandler(repo, ratings)
}

// Wire sets
var QueryHandlerSet = wire.NewSet(
	ProvideListCatalogHandler,
	ProvideGetProductHandler,
)

// InitializeHTTPHandler initializes the catalog HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.CatalogRepository, ratings domain.RatingSource) (*http.CatalogHandler, error) {
	wire.Build(
		QueryHandlerSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}

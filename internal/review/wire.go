//go:build wireinject
// +build wireinject

package review

import (
	"github.com/google/wire"

	"github.com/badjuice/storefront/internal/review/delivery/http"
	"github.com/badjuice/storefront/internal/review/domain"
	"github.com/badjuice/storefront/internal/review/usecase/command"
	"github.com/badjuice/storefront/internal/review/usecase/query"
)

// Command Handlers Providers
func ProvideSubmitReviewHandler(repo domain.ReviewRepository) *command.SubmitReviewHandler {
	return command.NewSubmitReviewHandler(repo)
}

// Query Handlers Providers
func ProvideListReviewsHandler(repo domain.ReviewRepository) *query.ListReviewsHandler {
	return query.NewListReviewsHandler(repo)
}

func ProvideGetSummaryHandler(repo domain.ReviewRepository) *query.GetSummaryHandler {
	return query.NewGetSummaryHandler(repo)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideSubmitReviewHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListReviewsHandler,
	ProvideGetSummaryHandler,
)

// InitializeHTTPHandler initializes the review HTTP handler with all dependencies
func InitializeHTTPHandler(repo domain.ReviewRepository) (*http.ReviewHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewReviewHandlerWithDI,
	)
	return nil, nil
}

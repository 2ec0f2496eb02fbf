//go:build wireinject
// +build wireinject

package playback

import (
	"github.com/google/wire"

	"github.com/badjuice/storefront/internal/playback/delivery/http"
	"github.com/badjuice/storefront/internal/playback/domain"
	"github.com/badjuice/storefront/internal/playback/usecase/command"
	"github.com/badjuice/storefront/internal/playback/usecase/query"
)

// Command Handlers Providers
func ProvideSelectTrackHandler(player *domain.Player) *command.SelectTrackHandler {
	return command.NewSelectTrackHandler(player)
}

func ProvideTogglePlayHandler(player *domain.Player) *command.TogglePlayHandler {
	return command.NewTogglePlayHandler(player)
}

func ProvideSkipNextHandler(player *domain.Player) *command.SkipNextHandler {
	return command.NewSkipNextHandler(player)
}

func ProvideSkipPreviousHandler(player *domain.Player) *command.SkipPreviousHandler {
	return command.NewSkipPreviousHandler(player)
}

func ProvideReportTimeHandler(player *domain.Player) *command.ReportTimeHandler {
	return command.NewReportTimeHandler(player)
}

func ProvideReportMetadataHandler(player *domain.Player) *command.ReportMetadataHandler {
	return command.NewReportMetadataHandler(player)
}

func ProvideTrackEndedHandler(player *domain.Player) *command.TrackEndedHandler {
	return command.NewTrackEndedHandler(player)
}

// Query Handlers Providers
func ProvideGetStateHandler(player *domain.Player) *query.GetStateHandler {
	return query.NewGetStateHandler(player)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideSelectTrackHandler,
	ProvideTogglePlayHandler,
	ProvideSkipNextHandler,
	ProvideSkipPreviousHandler,
	ProvideReportTimeHandler,
	ProvideReportMetadataHandler,
	ProvideTrackEndedHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetStateHandler,
)

// InitializeHTTPHandler initializes the player HTTP handler with all dependencies
func InitializeHTTPHandler(player *domain.Player) (*http.PlayerHandler, error) {
	wire.Build(
		CommandHandlerSet,
		QueryHandlerSet,
		http.NewPlayerHandlerWithDI,
	)
	return nil, nil
}

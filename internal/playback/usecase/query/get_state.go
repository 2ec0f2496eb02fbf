package query

import (
	"github.com/badjuice/storefront/internal/playback/domain"
)

// GetStateQuery represents the query for the player panel view
type GetStateQuery struct{}

// PlayerView is the player state as rendered by the music tab
type PlayerView struct {
	domain.State
	PositionLabel string         `json:"position_label"`
	DurationLabel string         `json:"duration_label"`
	Tracks        []domain.Track `json:"tracks"`
}

// GetStateHandler handles player state queries
type GetStateHandler struct {
	player *domain.Player
}

// NewGetStateHandler creates a new get state handler
func NewGetStateHandler(player *domain.Player) *GetStateHandler {
	return &GetStateHandler{player: player}
}

// Handle snapshots the player and attaches display labels
func (h *GetStateHandler) Handle(query GetStateQuery) PlayerView {
	state := h.player.Snapshot()
	return PlayerView{
		State:         state,
		PositionLabel: domain.FormatPosition(state.Position),
		DurationLabel: domain.FormatPosition(state.Duration),
		Tracks:        h.player.Tracks(),
	}
}

package command

import (
	"github.com/badjuice/storefront/internal/playback/domain"
)

// SelectTrackCommand represents the command to pick a track from the
// archive list
type SelectTrackCommand struct {
	Index int
}

// SelectTrackHandler handles track selection
type SelectTrackHandler struct {
	player *domain.Player
}

// NewSelectTrackHandler creates a new select track handler
func NewSelectTrackHandler(player *domain.Player) *SelectTrackHandler {
	return &SelectTrackHandler{player: player}
}

// Handle executes the select track command. Out-of-range indexes are
// clamped, never rejected.
func (h *SelectTrackHandler) Handle(cmd SelectTrackCommand) error {
	h.player.SelectTrack(cmd.Index)
	return nil
}

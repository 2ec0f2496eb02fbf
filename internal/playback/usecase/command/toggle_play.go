package command

import (
	"github.com/badjuice/storefront/internal/playback/domain"
)

// TogglePlayCommand represents the play/pause toggle
type TogglePlayCommand struct{}

// TogglePlayHandler handles the play/pause toggle
type TogglePlayHandler struct {
	player *domain.Player
}

// NewTogglePlayHandler creates a new toggle play handler
func NewTogglePlayHandler(player *domain.Player) *TogglePlayHandler {
	return &TogglePlayHandler{player: player}
}

// Handle executes the toggle command
func (h *TogglePlayHandler) Handle(cmd TogglePlayCommand) error {
	h.player.TogglePlayPause()
	return nil
}

package command

import (
	"github.com/badjuice/storefront/internal/playback/domain"
)

// SkipNextCommand moves playback to the following track
type SkipNextCommand struct{}

// SkipNextHandler handles forward skips
type SkipNextHandler struct {
	player *domain.Player
}

// NewSkipNextHandler creates a new skip next handler
func NewSkipNextHandler(player *domain.Player) *SkipNextHandler {
	return &SkipNextHandler{player: player}
}

// Handle executes the skip, a no-op at the last track
func (h *SkipNextHandler) Handle(cmd SkipNextCommand) error {
	h.player.SkipNext()
	return nil
}

// SkipPreviousCommand moves playback to the preceding track
type SkipPreviousCommand struct{}

// SkipPreviousHandler handles backward skips
type SkipPreviousHandler struct {
	player *domain.Player
}

// NewSkipPreviousHandler creates a new skip previous handler
func NewSkipPreviousHandler(player *domain.Player) *SkipPreviousHandler {
	return &SkipPreviousHandler{player: player}
}

// Handle executes the skip, a no-op at the first track
func (h *SkipPreviousHandler) Handle(cmd SkipPreviousCommand) error {
	h.player.SkipPrevious()
	return nil
}

package command

import (
	"github.com/badjuice/storefront/internal/playback/domain"
)

// The audio primitive reports three notifications back to the player:
// position changed, duration known, playback ended. The SPA forwards
// them from its audio element.

// ReportTimeCommand carries a position-changed notification
type ReportTimeCommand struct {
	Position float64
}

// ReportTimeHandler handles position notifications
type ReportTimeHandler struct {
	player *domain.Player
}

// NewReportTimeHandler creates a new report time handler
func NewReportTimeHandler(player *domain.Player) *ReportTimeHandler {
	return &ReportTimeHandler{player: player}
}

// Handle records the reported position; passive, no transition
func (h *ReportTimeHandler) Handle(cmd ReportTimeCommand) error {
	h.player.HandleTimeUpdate(cmd.Position)
	return nil
}

// ReportMetadataCommand carries a duration-known notification
type ReportMetadataCommand struct {
	Duration float64
}

// ReportMetadataHandler handles metadata notifications
type ReportMetadataHandler struct {
	player *domain.Player
}

// NewReportMetadataHandler creates a new report metadata handler
func NewReportMetadataHandler(player *domain.Player) *ReportMetadataHandler {
	return &ReportMetadataHandler{player: player}
}

// Handle records the reported duration; passive, no transition
func (h *ReportMetadataHandler) Handle(cmd ReportMetadataCommand) error {
	h.player.HandleLoadedMetadata(cmd.Duration)
	return nil
}

// TrackEndedCommand carries a playback-ended notification
type TrackEndedCommand struct{}

// TrackEndedHandler handles end-of-track notifications
type TrackEndedHandler struct {
	player *domain.Player
}

// NewTrackEndedHandler creates a new track ended handler
func NewTrackEndedHandler(player *domain.Player) *TrackEndedHandler {
	return &TrackEndedHandler{player: player}
}

// Handle auto-advances to the next track, or pauses in place when the
// last track finishes
func (h *TrackEndedHandler) Handle(cmd TrackEndedCommand) error {
	h.player.HandleEnded()
	return nil
}

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/playback/domain"
	"github.com/badjuice/storefront/internal/playback/usecase/query"
)

type nopOutput struct{}

func (nopOutput) Load(string) {}
func (nopOutput) Play()       {}
func (nopOutput) Pause()      {}

func TestGetStateAttachesLabels(t *testing.T) {
	player := domain.NewPlayer(domain.DefaultTracks, nopOutput{})
	handler := query.NewGetStateHandler(player)

	player.SelectTrack(1)
	player.HandleLoadedMetadata(185)
	player.HandleTimeUpdate(65)

	view := handler.Handle(query.GetStateQuery{})

	assert.Equal(t, 1, view.Index)
	assert.Equal(t, "GLITCH_MEMORIES.mp3", view.Track.Title)
	assert.Equal(t, "1:05", view.PositionLabel)
	assert.Equal(t, "3:05", view.DurationLabel)
	require.Len(t, view.Tracks, 3)
	assert.Equal(t, "DECAY.mp3", view.Tracks[0].Title)
}

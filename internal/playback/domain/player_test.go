package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/playback/domain"
)

// fakeOutput records the commands issued to the audio primitive
type fakeOutput struct {
	commands []string
}

func (f *fakeOutput) Load(source string) { f.commands = append(f.commands, "load "+source) }
func (f *fakeOutput) Play()              { f.commands = append(f.commands, "play") }
func (f *fakeOutput) Pause()             { f.commands = append(f.commands, "pause") }

var testTracks = []domain.Track{
	{Title: "DECAY.mp3", Source: "/audio/DECAY.mp3"},
	{Title: "GLITCH_MEMORIES.mp3", Source: "/audio/GLITCH_MEMORIES.mp3"},
	{Title: "ARCHIVE_001.mp3", Source: "/audio/ARCHIVE_001.mp3"},
}

func newPlayer() (*domain.Player, *fakeOutput) {
	out := &fakeOutput{}
	return domain.NewPlayer(testTracks, out), out
}

func TestInitialState(t *testing.T) {
	player, out := newPlayer()

	state := player.Snapshot()
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, domain.StatusIdle, state.Status)
	assert.Zero(t, state.Position)
	assert.Zero(t, state.Duration)
	assert.Equal(t, "DECAY.mp3", state.Track.Title)
	assert.Empty(t, out.commands)
}

func TestSelectTrackAutoStarts(t *testing.T) {
	player, out := newPlayer()

	player.SelectTrack(1)

	state := player.Snapshot()
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, domain.StatusPlaying, state.Status)
	assert.Zero(t, state.Position)
	assert.Equal(t, []string{"load /audio/GLITCH_MEMORIES.mp3", "play"}, out.commands)
}

func TestSelectTrackClampsIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{name: "negative", index: -5, want: 0},
		{name: "past end", index: 99, want: 2},
		{name: "in range", index: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, _ := newPlayer()
			player.SelectTrack(tt.index)
			assert.Equal(t, tt.want, player.Snapshot().Index)
		})
	}
}

func TestSelectTrackResetsPositionAndDuration(t *testing.T) {
	player, _ := newPlayer()

	player.SelectTrack(0)
	player.HandleLoadedMetadata(180)
	player.HandleTimeUpdate(42)

	player.SelectTrack(1)

	state := player.Snapshot()
	assert.Zero(t, state.Position)
	assert.Zero(t, state.Duration)
}

func TestTogglePlayPause(t *testing.T) {
	player, out := newPlayer()

	player.TogglePlayPause()
	assert.Equal(t, domain.StatusPlaying, player.Snapshot().Status)

	player.TogglePlayPause()
	assert.Equal(t, domain.StatusPaused, player.Snapshot().Status)

	player.TogglePlayPause()
	assert.Equal(t, domain.StatusPlaying, player.Snapshot().Status)

	assert.Equal(t, []string{"play", "pause", "play"}, out.commands)
}

func TestToggleResumesFromCurrentPosition(t *testing.T) {
	player, _ := newPlayer()

	player.SelectTrack(0)
	player.HandleTimeUpdate(30)
	player.TogglePlayPause()

	require.Equal(t, domain.StatusPaused, player.Snapshot().Status)
	assert.Equal(t, 30.0, player.Snapshot().Position)

	player.TogglePlayPause()
	state := player.Snapshot()
	assert.Equal(t, domain.StatusPlaying, state.Status)
	assert.Equal(t, 30.0, state.Position)
}

func TestSkipNextClampsAtLastTrack(t *testing.T) {
	player, out := newPlayer()

	player.SelectTrack(2)
	out.commands = nil

	player.SkipNext()

	state := player.Snapshot()
	assert.Equal(t, 2, state.Index)
	// No wraparound and no output commands at the boundary.
	assert.Empty(t, out.commands)
}

func TestSkipPreviousClampsAtFirstTrack(t *testing.T) {
	player, out := newPlayer()

	player.SkipPrevious()

	assert.Equal(t, 0, player.Snapshot().Index)
	assert.Empty(t, out.commands)
}

func TestSkipRestartsPlaybackOnNewTrack(t *testing.T) {
	player, out := newPlayer()

	player.SelectTrack(1)
	player.HandleTimeUpdate(15)
	out.commands = nil

	player.SkipNext()

	state := player.Snapshot()
	assert.Equal(t, 2, state.Index)
	assert.Equal(t, domain.StatusPlaying, state.Status)
	assert.Zero(t, state.Position)
	assert.Equal(t, []string{"load /audio/ARCHIVE_001.mp3", "play"}, out.commands)

	out.commands = nil
	player.SkipPrevious()
	assert.Equal(t, 1, player.Snapshot().Index)
	assert.Equal(t, []string{"load /audio/GLITCH_MEMORIES.mp3", "play"}, out.commands)
}

func TestTimeAndMetadataNotificationsArePassive(t *testing.T) {
	player, _ := newPlayer()

	player.SelectTrack(0)
	player.HandleLoadedMetadata(200)
	player.HandleTimeUpdate(12.5)

	state := player.Snapshot()
	assert.Equal(t, domain.StatusPlaying, state.Status)
	assert.Equal(t, 12.5, state.Position)
	assert.Equal(t, 200.0, state.Duration)
}

func TestTimeUpdateIgnoresInvalidAndCapsAtDuration(t *testing.T) {
	player, _ := newPlayer()
	player.SelectTrack(0)
	player.HandleLoadedMetadata(100)

	player.HandleTimeUpdate(50)
	player.HandleTimeUpdate(math.NaN())
	assert.Equal(t, 50.0, player.Snapshot().Position)

	player.HandleTimeUpdate(-3)
	assert.Equal(t, 50.0, player.Snapshot().Position)

	player.HandleTimeUpdate(250)
	assert.Equal(t, 100.0, player.Snapshot().Position)
}

func TestEndedAdvancesToNextTrack(t *testing.T) {
	player, out := newPlayer()

	player.SelectTrack(0)
	out.commands = nil

	player.HandleEnded()

	state := player.Snapshot()
	assert.Equal(t, 1, state.Index)
	assert.Equal(t, domain.StatusPlaying, state.Status)
	assert.Zero(t, state.Position)
	assert.Equal(t, []string{"load /audio/GLITCH_MEMORIES.mp3", "play"}, out.commands)
}

func TestEndedAtLastTrackPausesInPlace(t *testing.T) {
	player, _ := newPlayer()

	player.SelectTrack(2)
	player.HandleEnded()

	state := player.Snapshot()
	assert.Equal(t, 2, state.Index)
	assert.Equal(t, domain.StatusPaused, state.Status)
}

func TestEmptyTrackListIsInert(t *testing.T) {
	out := &fakeOutput{}
	player := domain.NewPlayer(nil, out)

	player.SelectTrack(0)
	player.SkipNext()
	player.HandleEnded()

	assert.Equal(t, 0, player.Snapshot().Index)
	// HandleEnded on an empty list still pauses, but issues no load.
	for _, cmd := range out.commands {
		assert.NotContains(t, cmd, "load")
	}
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{125.8, "2:05"},
		{600, "10:00"},
		{-1, "0:00"},
		{math.NaN(), "0:00"},
		{math.Inf(1), "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FormatPosition(tt.in), "FormatPosition(%v)", tt.in)
	}
}

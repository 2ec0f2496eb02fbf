package domain

import (
	"fmt"
	"math"
	"sync"
)

// Status is the playback state of the player
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
)

// Track is one entry of the ordered archive track list
type Track struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// DefaultTracks is the archive audio assortment served by the
// storefront's music tab
var DefaultTracks = []Track{
	{Title: "DECAY.mp3", Source: "/audio/DECAY.mp3"},
	{Title: "GLITCH_MEMORIES.mp3", Source: "/audio/GLITCH_MEMORIES.mp3"},
	{Title: "ARCHIVE_001.mp3", Source: "/audio/ARCHIVE_001.mp3"},
}

// State is a snapshot of the player for the rendering boundary.
// Duration is 0 until the audio primitive has reported it.
type State struct {
	Index    int     `json:"index"`
	Track    Track   `json:"track"`
	Status   Status  `json:"status"`
	Position float64 `json:"position"`
	Duration float64 `json:"duration"`
}

// AudioOutput is the external primitive that actually renders audio.
// The player only commands it and observes its notifications; output
// failures leave player state unchanged.
type AudioOutput interface {
	Load(source string)
	Play()
	Pause()
}

// Player is the playback state machine over the ordered track list.
// Exactly one player exists per process. The mutex gives each
// transition run-to-completion semantics: a command or notification is
// fully applied before the next one is observed.
type Player struct {
	mu       sync.Mutex
	tracks   []Track
	index    int
	status   Status
	position float64
	duration float64
	out      AudioOutput
}

// NewPlayer creates a player over the given tracks, starting idle on
// the first track
func NewPlayer(tracks []Track, out AudioOutput) *Player {
	p := &Player{
		tracks: make([]Track, len(tracks)),
		status: StatusIdle,
		out:    out,
	}
	copy(p.tracks, tracks)
	return p
}

// SelectTrack loads the track at the given index and starts playing it
// from the beginning. The index is clamped into [0, N-1]; selection
// implies auto-start.
func (p *Player) SelectTrack(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectLocked(index)
}

func (p *Player) selectLocked(index int) {
	if len(p.tracks) == 0 {
		return
	}
	p.index = clamp(index, 0, len(p.tracks)-1)
	p.position = 0
	p.duration = 0
	p.status = StatusPlaying
	p.out.Load(p.tracks[p.index].Source)
	p.out.Play()
}

// TogglePlayPause pauses a playing player or resumes a paused or idle
// one from its current position
func (p *Player) TogglePlayPause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status == StatusPlaying {
		p.status = StatusPaused
		p.out.Pause()
		return
	}
	p.status = StatusPlaying
	p.out.Play()
}

// SkipNext moves to the following track. At the last track it does
// nothing: no wraparound, no output commands.
func (p *Player) SkipNext() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index >= len(p.tracks)-1 {
		return
	}
	p.selectLocked(p.index + 1)
}

// SkipPrevious moves to the preceding track, a no-op at the first one
func (p *Player) SkipPrevious() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index <= 0 {
		return
	}
	p.selectLocked(p.index - 1)
}

// HandleTimeUpdate records the playback position reported by the audio
// primitive. Passive: no state transition. Invalid positions are
// ignored; known durations cap the position.
func (p *Player) HandleTimeUpdate(position float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if math.IsNaN(position) || position < 0 {
		return
	}
	if p.duration > 0 && position > p.duration {
		position = p.duration
	}
	p.position = position
}

// HandleLoadedMetadata records the track duration once the audio
// primitive knows it. Passive.
func (p *Player) HandleLoadedMetadata(duration float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if math.IsNaN(duration) || duration < 0 {
		return
	}
	p.duration = duration
}

// HandleEnded advances to the next track when one remains; at the last
// track the player pauses in place with the index unchanged.
func (p *Player) HandleEnded() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.index < len(p.tracks)-1 {
		p.selectLocked(p.index + 1)
		return
	}
	p.status = StatusPaused
	p.out.Pause()
}

// Snapshot returns the current player state
func (p *Player) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := State{
		Index:    p.index,
		Status:   p.status,
		Position: p.position,
		Duration: p.duration,
	}
	if p.index < len(p.tracks) {
		s.Track = p.tracks[p.index]
	}
	return s
}

// Tracks returns the ordered track list
func (p *Player) Tracks() []Track {
	out := make([]Track, len(p.tracks))
	copy(out, p.tracks)
	return out
}

// FormatPosition renders elapsed seconds as m:ss with the seconds
// zero-padded to two digits. Undefined input renders as 0:00.
func FormatPosition(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

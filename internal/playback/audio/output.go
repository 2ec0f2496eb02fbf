package audio

import (
	"github.com/badjuice/storefront/pkg/logger"
)

// LogOutput is the production audio binding. The SPA's audio element
// does the actual rendering in the browser; the server side only logs
// the commands it would issue.
type LogOutput struct{}

// NewLogOutput creates a logging audio output
func NewLogOutput() *LogOutput {
	return &LogOutput{}
}

func (o *LogOutput) Load(source string) {
	logger.Logger.Debug().Str("source", source).Msg("Audio load")
}

func (o *LogOutput) Play() {
	logger.Logger.Debug().Msg("Audio play")
}

func (o *LogOutput) Pause() {
	logger.Logger.Debug().Msg("Audio pause")
}

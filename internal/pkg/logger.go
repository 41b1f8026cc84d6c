package pkg

import (
	"os"

	"github.com/rs/zerolog"
)

var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger switches to console output for local runs.
func InitLogger(pretty bool) {
	if pretty {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
}

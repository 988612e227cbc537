// Package logging configures the process-wide zerolog logger.
//
// Logs always go to stderr or another writer distinct from the response
// stream; stdout carries responses only.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Supported log formats.
const (
	FormatJSON  = "json"
	FormatHuman = "human"
)

// InitLogger initializes the zerolog logger with the given level and output format.
// Unknown levels fall back to info.
func InitLogger(out io.Writer, level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano          // always initialize base logger with timestamp.
	base := zerolog.New(out).With().Timestamp().Logger() // initialize base logger.
	if strings.EqualFold(strings.TrimSpace(format), FormatHuman) {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
		}) // select output format.
	} else {
		log.Logger = base // use JSON logger.
	}

	zerolog.SetGlobalLevel(ParseLevel(level))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return lvl
}

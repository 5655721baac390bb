package commands

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger implements wpapi.Logger on top of zerolog.
type Logger struct {
	log zerolog.Logger
}

// NewLogger creates a console logger writing to stderr.
func NewLogger() *Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &Logger{
		log: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

// Debug implements wpapi.Logger.Debug.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

// Info implements wpapi.Logger.Info.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

// Warn implements wpapi.Logger.Warn.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

// Error implements wpapi.Logger.Error.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}

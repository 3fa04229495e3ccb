package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used across the application. Fields carry
// structured context; component identifies the subsystem emitting the event.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnv derives the log level from LOG_LEVEL, with MDVIEW_DEBUG=1 as
// a shorthand for debug output.
func LevelFromEnv() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	if os.Getenv("MDVIEW_DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

package spritegen

import (
	"strings"

	"github.com/akeil/spritegen/internal/logging"
)

// SetLogLevel sets the log level by name.
// Valid names are "debug", "info", "warning" and "error";
// anything else turns logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}


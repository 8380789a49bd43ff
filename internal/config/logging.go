package config

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// InitLogging configures the global logrus logger
func InitLogging(level, format string) error {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	switch strings.ToLower(format) {
	case LogFormatJSON:
		log.SetFormatter(&log.JSONFormatter{})
	case LogFormatText, "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}

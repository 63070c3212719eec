// Package shared holds helpers used by every blackjack subcommand.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the logger all components receive. Warnings and
// errors only by default so prompts stay clean; debug flips everything on.
func SetupLogger(debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: debug,
	})
}

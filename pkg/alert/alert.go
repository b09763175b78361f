// Package alert shows the one user-facing notice goconemu raises: the modal
// error box on the top-level failure path.
package alert

import (
	"io"
	"os"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Alerter shows a notice to the user. Show never fails; problems are logged.
type Alerter interface {
	Show(title, message string)
}

// Options contains configuration for the alert
type Options struct {
	// Enabled false only logs the notice
	Enabled bool
	// Native uses the OS message box where one exists
	Native bool
	// Console receives the notice when no message box is available. Defaults to os.Stderr.
	Console io.Writer
	Logger  zerolog.Logger
}

// Alert is the default Alerter
type Alert struct {
	enabled bool
	native  bool
	console io.Writer
	logger  zerolog.Logger
}

// New creates a new alert instance
func New(opts Options) *Alert {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("alert")
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	return &Alert{
		enabled: opts.Enabled,
		native:  opts.Native,
		console: console,
		logger:  logger,
	}
}

// Show displays title and message
func (a *Alert) Show(title, message string) {
	a.logger.Debug().Str("title", title).Bool("enabled", a.enabled).Msg("Showing alert")

	if !a.enabled {
		return
	}

	if a.native {
		err := showNative(title, message)
		if err == nil {
			return
		}
		a.logger.Warn().Err(err).Msg("Message box unavailable, writing alert to console")
	}

	pterm.Error.WithWriter(a.console).Println(title + "\n" + message)
}

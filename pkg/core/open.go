package core

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/alert"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/resolver"
	"github.com/rs/zerolog"
)

// AlertTitle is the caption of the failure message box
const AlertTitle = "goconemu"

// PathResolver turns a pane path into a terminal start location
type PathResolver interface {
	Resolve(ctx context.Context, path string) (resolver.Resolution, error)
}

// TerminalLauncher starts the terminal directly or through the pushd script
type TerminalLauncher interface {
	Launch(ctx context.Context, dir string) error
	LaunchBatch(ctx context.Context, uncPath string) (string, error)
}

// OpenOptions contains options for Open
type OpenOptions struct {
	// Path is the file manager's pane path
	Path string

	Resolver PathResolver
	Launcher TerminalLauncher
	Alert    alert.Alerter

	// LogFile is named in the alert so the user knows where to look
	LogFile string

	// SetupErr is a failure from before Open was reached, e.g. an invalid
	// configuration. It is reported and opts.Path is launched unresolved.
	SetupErr error

	Logger zerolog.Logger
}

// OpenResult describes what Open did
type OpenResult struct {
	Resolution resolver.Resolution `json:"resolution" yaml:"resolution"`
	// Dir is where the terminal was started, empty when the batch script was used
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
	// Script is the batch file started for an unparseable network path
	Script string `json:"script,omitempty" yaml:"script,omitempty"`
	// Fallback is set when an error sent Open down the fallback launch
	Fallback bool `json:"fallback" yaml:"fallback"`
}

// Open resolves opts.Path and starts the terminal there.
//
// A returned error means the normal path failed; by then the alert has been
// shown and the terminal has been started with opts.Path. If that fallback
// launch failed too, its error is returned instead.
func Open(ctx context.Context, opts OpenOptions) (result *OpenResult, err error) {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("core.open")
	}

	logger.Info().Msg("=== New goconemu execution ===")
	logger.Info().Str("path", opts.Path).Msg("Original path")

	result = &OpenResult{}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrPanic, "unexpected panic: %v", r).
				WithDetail("stack", string(debug.Stack()))
		}
		if err == nil {
			return
		}
		result.Fallback = true
		err = fallback(ctx, opts, logger, err)
	}()

	if opts.SetupErr != nil {
		return result, opts.SetupErr
	}

	res, err := opts.Resolver.Resolve(ctx, opts.Path)
	if err != nil {
		return result, err
	}
	result.Resolution = res

	logger.Info().
		Str("state", string(res.State)).
		Str("path", res.Path).
		Msg("Path resolved")

	if res.Batch() {
		script, err := opts.Launcher.LaunchBatch(ctx, res.Path)
		if err != nil {
			return result, err
		}
		result.Script = script
		return result, nil
	}

	if err := opts.Launcher.Launch(ctx, res.Path); err != nil {
		return result, err
	}
	result.Dir = res.Path
	return result, nil
}

// fallback reports cause and starts the terminal in the original path.
// It returns cause, or the fallback's own error when that launch fails.
func fallback(ctx context.Context, opts OpenOptions, logger zerolog.Logger, cause error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrPanic, "panic in fallback launch: %v", r)
			logger.Error().Err(err).Msg("Fallback launch failed")
		}
	}()

	logger.Error().
		Str("code", string(errors.GetErrorCode(cause))).
		Interface("details", errors.GetErrorDetails(cause)).
		Str("error", fmt.Sprintf("%+v", cause)).
		Msg("Error handling network path")

	if opts.Alert != nil {
		showAlert(opts.Alert, logger, alertMessage(cause, opts.LogFile))
	}

	logger.Info().Str("path", opts.Path).Msg("Falling back to original path")
	if launchErr := opts.Launcher.Launch(ctx, opts.Path); launchErr != nil {
		logger.Error().Err(launchErr).Msg("Fallback launch failed")
		return launchErr
	}
	return cause
}

// showAlert shows message and swallows a panicking alerter so the fallback
// launch still happens.
func showAlert(a alert.Alerter, logger zerolog.Logger, message string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Failed to show alert")
		}
	}()
	a.Show(AlertTitle, message)
}

func alertMessage(cause error, logFile string) string {
	msg := fmt.Sprintf("Error handling network path: %v", cause)
	if logFile != "" {
		msg += "\nSee logs at: " + logFile
	}
	return msg
}

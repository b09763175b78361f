// Package launcher starts the terminal emulator in a resolved directory.
package launcher

import (
	"context"
	"fmt"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/executor"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultExecutable is where the ConEmu installer puts the 64-bit binary
const DefaultExecutable = `C:\Program Files\ConEmu\ConEmu64.exe`

// Fixed terminal flags. The start directory is the only variable.
const (
	FlagSingle = "-Single"
	FlagDir    = "-Dir"
)

// CommandLine renders the terminal invocation for dir
func CommandLine(executable, dir string) string {
	return fmt.Sprintf(`"%s" %s %s "%s"`, executable, FlagSingle, FlagDir, dir)
}

// Options contains configuration for the launcher
type Options struct {
	Executable string
	Runner     executor.Runner

	// FS receives the batch fallback script. Defaults to the OS filesystem.
	FS         afero.Fs
	ScriptPath string

	// LogFile is referenced by the batch script for its own diagnostics
	LogFile string

	Logger zerolog.Logger
}

// Launcher spawns the terminal emulator
type Launcher struct {
	executable string
	runner     executor.Runner
	fs         afero.Fs
	scriptPath string
	logFile    string
	logger     zerolog.Logger
}

// New creates a new launcher instance
func New(opts Options) *Launcher {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("launcher")
	}

	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	executable := opts.Executable
	if executable == "" {
		executable = DefaultExecutable
	}

	return &Launcher{
		executable: executable,
		runner:     opts.Runner,
		fs:         fs,
		scriptPath: opts.ScriptPath,
		logFile:    opts.LogFile,
		logger:     logger,
	}
}

// Executable returns the terminal binary this launcher starts
func (l *Launcher) Executable() string {
	return l.executable
}

// Command builds the terminal command for dir
func (l *Launcher) Command(dir string) executor.Command {
	return executor.Command{
		Name:    l.executable,
		Args:    []string{FlagSingle, FlagDir, dir},
		CmdLine: CommandLine(l.executable, dir),
	}
}

// Launch starts the terminal in dir
func (l *Launcher) Launch(ctx context.Context, dir string) error {
	cmd := l.Command(dir)
	l.logger.Info().Str("cmdline", cmd.CmdLine).Msg("Launching terminal")

	if err := l.runner.Start(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrLaunch, "failed to launch terminal in %s", dir).
			WithDetail("executable", l.executable)
	}
	return nil
}

// LaunchBatch writes the pushd script for uncPath and starts it.
// The script is left on disk.
func (l *Launcher) LaunchBatch(ctx context.Context, uncPath string) (string, error) {
	if err := l.WriteBatchScript(uncPath); err != nil {
		return "", err
	}
	l.logger.Info().Str("script", l.scriptPath).Msg("Created batch file, starting it directly")

	cmd := executor.Command{
		Name:    "cmd.exe",
		Args:    []string{"/C", "start", "", l.scriptPath},
		CmdLine: fmt.Sprintf(`cmd.exe /C start "" "%s"`, l.scriptPath),
	}
	if err := l.runner.Start(ctx, cmd); err != nil {
		return l.scriptPath, errors.Wrapf(err, errors.ErrLaunch, "failed to start batch file %s", l.scriptPath)
	}
	return l.scriptPath, nil
}

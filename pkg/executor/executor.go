package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/rs/zerolog"
)

// Command describes one external program invocation
type Command struct {
	Name string
	Args []string

	// CmdLine, when set, is handed to the OS verbatim instead of a command line
	// built from Args. Only honoured on Windows.
	CmdLine string

	Dir string
}

// Result holds what a finished command produced
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Duration time.Duration
}

// Runner is what the rest of goconemu needs from the executor
type Runner interface {
	// Run waits for the command. A non-zero exit is reported in Result, not as an error.
	Run(ctx context.Context, cmd Command) (Result, error)
	// Start spawns the command without waiting for it
	Start(ctx context.Context, cmd Command) error
}

// Options contains configuration for the executor
type Options struct {
	DryRun bool
	Logger zerolog.Logger
}

// Executor runs commands through os/exec
type Executor struct {
	dryRun bool
	logger zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("executor")
	}

	return &Executor{
		dryRun: opts.DryRun,
		logger: logger,
	}
}

// Run executes cmd and waits for it to finish
func (e *Executor) Run(ctx context.Context, cmd Command) (Result, error) {
	start := time.Now()
	done := logging.LogOperationStart(e.logger, cmd.Name)
	defer done()

	e.logger.Debug().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Str("cmdline", cmd.CmdLine).
		Msg("Running command")

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	applyCmdLine(c, cmd.CmdLine)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case stderrors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, errors.Wrapf(err, errors.ErrLaunch, "failed to run %s", cmd.Name).
			WithDetail("args", cmd.Args)
	}

	e.logger.Debug().
		Str("command", cmd.Name).
		Int("exitCode", result.ExitCode).
		Str("stdout", stdout.String()).
		Str("stderr", stderr.String()).
		Msg("Command finished")

	return result, nil
}

// Start spawns cmd and releases it. In dry-run mode nothing is spawned.
func (e *Executor) Start(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.logger.Info().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Str("cmdline", cmd.CmdLine).
		Bool("dryRun", e.dryRun).
		Msg("Starting command")

	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - command would be started")
		return nil
	}

	// Not tied to ctx: the child must outlive this process.
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	applyCmdLine(c, cmd.CmdLine)

	if err := c.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrLaunch, "failed to start %s", cmd.Name).
			WithDetail("args", cmd.Args)
	}

	pid := c.Process.Pid
	if err := c.Process.Release(); err != nil {
		e.logger.Warn().Err(err).Int("pid", pid).Msg("Failed to release process handle")
	}

	e.logger.Debug().Int("pid", pid).Msg("Command started")
	return nil
}

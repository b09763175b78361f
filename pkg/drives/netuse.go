package drives

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/executor"
	"github.com/rs/zerolog"
)

// NetCommand is the OS network-mapping utility
const NetCommand = "net"

// withTimeout bounds ctx by d; zero leaves it unbounded
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// NetUseLister lists mappings by parsing the output of "net use"
type NetUseLister struct {
	Runner  executor.Runner
	Timeout time.Duration
	Logger  zerolog.Logger
}

// ListMappings runs net use and parses its report
func (l *NetUseLister) ListMappings(ctx context.Context) ([]Mapping, error) {
	l.Logger.Debug().Msg("Checking for existing drive mappings with 'net use'")

	ctx, cancel := withTimeout(ctx, l.Timeout)
	defer cancel()

	result, err := l.Runner.Run(ctx, executor.Command{Name: NetCommand, Args: []string{"use"}})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMappingQuery, "failed to list drive mappings")
	}
	if result.ExitCode != 0 {
		return nil, errors.Newf(errors.ErrMappingQuery, "net use exited with code %d", result.ExitCode).
			WithDetail("stderr", string(result.Stderr))
	}

	output := string(result.Stdout)
	l.Logger.Debug().Str("output", output).Msg("net use output")

	mappings := ParseListing(output)
	l.Logger.Debug().Int("count", len(mappings)).Msg("Parsed drive mappings")
	return mappings, nil
}

// NetUseCreator creates mappings with "net use <letter> <share>"
type NetUseCreator struct {
	Runner      executor.Runner
	Persistence Persistence
	Timeout     time.Duration
	Logger      zerolog.Logger
}

// CreateMapping runs net use and returns its exit code
func (c *NetUseCreator) CreateMapping(ctx context.Context, letter Letter, serverShare string) (int, error) {
	args := []string{"use", string(letter), serverShare}
	switch c.Persistence {
	case PersistenceYes, PersistenceNo:
		args = append(args, "/persistent:"+string(c.Persistence))
	}

	c.Logger.Info().
		Str("letter", string(letter)).
		Str("serverShare", serverShare).
		Strs("args", args).
		Msg("Creating new network mapping")

	ctx, cancel := withTimeout(ctx, c.Timeout)
	defer cancel()

	result, err := c.Runner.Run(ctx, executor.Command{Name: NetCommand, Args: args})
	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.Logger.Info().
				Dur("timeout", c.Timeout).
				Int("result", ExitTimeout).
				Msg("net use timed out")
			return ExitTimeout, nil
		}
		return -1, errors.Wrapf(err, errors.ErrMappingCreate, "failed to run net use for %s", serverShare)
	}

	c.Logger.Info().Int("result", result.ExitCode).Msg("Result of net use command")
	return result.ExitCode, nil
}

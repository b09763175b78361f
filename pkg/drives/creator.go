package drives

import (
	"context"

	"github.com/rs/zerolog"
)

// ExitSuccess is the code a Creator reports for a created mapping
const ExitSuccess = 0

// ExitTimeout is reported when the mapping attempt ran past its deadline.
// It is the Win32 ERROR_TIMEOUT value.
const ExitTimeout = 1460

// Creator binds a drive letter to a share.
//
// The returned code is 0 on success and non-zero when the OS refused the
// mapping (unreachable share, letter taken meanwhile, access denied). The error
// is reserved for failing to reach the mapping facility at all.
type Creator interface {
	CreateMapping(ctx context.Context, letter Letter, serverShare string) (int, error)
}

// DryRunCreator reports success without creating anything
type DryRunCreator struct {
	Logger zerolog.Logger
}

// CreateMapping logs the mapping that would be created
func (c DryRunCreator) CreateMapping(_ context.Context, letter Letter, serverShare string) (int, error) {
	c.Logger.Info().
		Str("letter", string(letter)).
		Str("serverShare", serverShare).
		Msg("Dry run mode - mapping would be created")
	return ExitSuccess, nil
}

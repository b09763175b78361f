package unc

import (
	"strings"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
)

// Separator is the only character treated as a path separator in a UNC path.
const Separator = '\\'

// Prefix is the leading marker of a UNC path.
const Prefix = `\\`

// ErrParse is matched with errors.Is against any parse failure.
var ErrParse = errors.New(errors.ErrParseFailed, "not a server/share path")

// NetworkPath is a UNC path split into its parts.
// Server and Share are never empty. Remainder is empty or starts with a separator.
type NetworkPath struct {
	Server    string
	Share     string
	Remainder string
}

// ServerShare returns the canonical \\server\share key.
func (p NetworkPath) ServerShare() string {
	return Prefix + p.Server + string(Separator) + p.Share
}

// String returns the full path.
func (p NetworkPath) String() string {
	return p.ServerShare() + p.Remainder
}

// IsNetworkPath reports whether path begins with the UNC prefix.
func IsNetworkPath(path string) bool {
	return strings.HasPrefix(path, Prefix)
}

// Parse splits path into server, share and remainder.
func Parse(path string) (NetworkPath, error) {
	if !IsNetworkPath(path) {
		return NetworkPath{}, parseError(path, "missing UNC prefix")
	}

	rest := path[len(Prefix):]
	server, rest := leadingComponent(rest)
	if server == "" {
		return NetworkPath{}, parseError(path, "missing server")
	}
	if rest == "" {
		return NetworkPath{}, parseError(path, "missing share")
	}

	// rest starts with the separator following the server
	share, remainder := leadingComponent(rest[1:])
	if share == "" {
		return NetworkPath{}, parseError(path, "missing share")
	}

	return NetworkPath{
		Server:    server,
		Share:     share,
		Remainder: remainder,
	}, nil
}

// leadingComponent splits s at its first separator. The separator stays on rest.
func leadingComponent(s string) (component, rest string) {
	if i := strings.IndexByte(s, Separator); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func parseError(path, reason string) error {
	return errors.Wrapf(ErrParse, errors.ErrParseFailed, "cannot parse network path %q", path).
		WithDetail("reason", reason)
}

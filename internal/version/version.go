package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/BenjaminKobjolke/FMANGoConemu/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/BenjaminKobjolke/FMANGoConemu/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/BenjaminKobjolke/FMANGoConemu/internal/version.Date={{.Date}}
)

// String renders the build information on one line
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

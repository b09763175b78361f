package drives

import (
	"context"
	"strings"
)

// Mapping is one live letter to share binding as reported by the OS.
type Mapping struct {
	Letter Letter `json:"letter" yaml:"letter"`
	// Target is the \\server\share form. It may be empty when the listing line
	// carried a letter but no recognisable share token.
	Target string `json:"target" yaml:"target"`
	// Line is the raw listing line the record came from, if any.
	Line string `json:"-" yaml:"-"`
}

// Lister returns the current mappings in the order the OS reports them
type Lister interface {
	ListMappings(ctx context.Context) ([]Mapping, error)
}

// MatchMode selects how a server+share key is compared with a mapping
type MatchMode string

const (
	// MatchExact compares the mapping target with the key, ignoring case
	MatchExact MatchMode = "exact"
	// MatchSubstring accepts any mapping whose listing line contains the key
	MatchSubstring MatchMode = "substring"
)

// FindMapping returns the letter of the first mapping covering serverShare.
// Listing order decides between duplicates.
func FindMapping(serverShare string, mappings []Mapping, mode MatchMode) (Letter, bool) {
	for _, m := range mappings {
		if matches(serverShare, m, mode) {
			return m.Letter, true
		}
	}
	return "", false
}

func matches(serverShare string, m Mapping, mode MatchMode) bool {
	if mode == MatchSubstring {
		haystack := m.Line
		if haystack == "" {
			haystack = m.Target
		}
		return strings.Contains(haystack, serverShare)
	}
	return m.Target != "" && strings.EqualFold(m.Target, serverShare)
}

// ParseListing turns a line-oriented mapping report (net use) into records.
//
// This is a token heuristic, not a parse of the report format: a line yields a
// record when one of its whitespace-delimited fields is a "<letter>:" token.
// The first such token is the letter. The target starts at the first \\ on the
// line and runs to the next gap of two or more spaces, so share names may
// contain single spaces. Header, separator and letterless lines are skipped.
func ParseListing(output string) []Mapping {
	var mappings []Mapping
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		var letter Letter
		for _, field := range strings.Fields(line) {
			if l, ok := ParseLetter(field); ok {
				letter = l
				break
			}
		}
		if letter == "" {
			continue
		}
		mappings = append(mappings, Mapping{Letter: letter, Target: remoteColumn(line), Line: line})
	}
	return mappings
}

// columnGap separates the columns of a net use report
const columnGap = "  "

// remoteColumn returns the \\server\share text of a listing line, or "" without one
func remoteColumn(line string) string {
	start := strings.Index(line, `\\`)
	if start < 0 {
		return ""
	}
	remote := line[start:]
	if end := strings.Index(remote, columnGap); end >= 0 {
		remote = remote[:end]
	}
	return strings.TrimRight(remote, " \t")
}

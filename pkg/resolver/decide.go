package resolver

import (
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/unc"
)

// Snapshot is the OS mapping state a decision is made against
type Snapshot struct {
	Mappings []drives.Mapping
	// Used holds the letters in the drive mask plus every listed mapping
	Used drives.LetterSet
	Free []drives.Letter
}

// DecisionKind is what Decide wants done with a network path
type DecisionKind int

const (
	// UseExisting launches on a mapping that already covers the share
	UseExisting DecisionKind = iota
	// CreateMapping binds Letter to the share first
	CreateMapping
	// UseUNC launches on the original path
	UseUNC
)

func (k DecisionKind) String() string {
	switch k {
	case UseExisting:
		return "use_existing"
	case CreateMapping:
		return "create_mapping"
	case UseUNC:
		return "use_unc"
	}
	return "unknown"
}

// Decision is the outcome of Decide
type Decision struct {
	Kind   DecisionKind
	Letter drives.Letter
}

// Decide picks what to do with np given snap. The highest free letter is used
// for a new mapping.
func Decide(np unc.NetworkPath, snap Snapshot, mode drives.MatchMode) Decision {
	if letter, ok := drives.FindMapping(np.ServerShare(), snap.Mappings, mode); ok {
		return Decision{Kind: UseExisting, Letter: letter}
	}
	if len(snap.Free) == 0 {
		return Decision{Kind: UseUNC}
	}
	return Decision{Kind: CreateMapping, Letter: snap.Free[0]}
}

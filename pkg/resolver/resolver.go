package resolver

import (
	"context"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/unc"
	"github.com/rs/zerolog"
)

// State is the terminal state a resolution ended in
type State string

const (
	StateLocal          State = "local"
	StateMappingFound   State = "mapping_found"
	StateNoFreeLetters  State = "no_free_letters"
	StateMappingCreated State = "mapping_created"
	StateCreateFailed   State = "create_failed"
	StateParseFailed    State = "parse_failed"
)

// Resolution is the result of resolving one path
type Resolution struct {
	State State `json:"state" yaml:"state"`
	// Path is what the terminal should be started in. For StateParseFailed it
	// is the original path, to be entered through the batch fallback.
	Path        string        `json:"path" yaml:"path"`
	Original    string        `json:"original" yaml:"original"`
	Letter      drives.Letter `json:"letter,omitempty" yaml:"letter,omitempty"`
	ServerShare string        `json:"serverShare,omitempty" yaml:"serverShare,omitempty"`
	// ExitCode is the mapping creator's result when a mapping was attempted
	ExitCode int `json:"exitCode,omitempty" yaml:"exitCode,omitempty"`
}

// Batch reports whether the path must be entered through the pushd script
func (r Resolution) Batch() bool {
	return r.State == StateParseFailed
}

// Options contains the OS collaborators of a Resolver
type Options struct {
	Lister  drives.Lister
	Masks   drives.MaskSource
	Creator drives.Creator
	Match   drives.MatchMode
	Logger  zerolog.Logger
}

// Resolver resolves pane paths against live mapping state
type Resolver struct {
	lister  drives.Lister
	masks   drives.MaskSource
	creator drives.Creator
	match   drives.MatchMode
	logger  zerolog.Logger
}

// New creates a new resolver instance
func New(opts Options) *Resolver {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("resolver")
	}

	match := opts.Match
	if match == "" {
		match = drives.MatchExact
	}

	return &Resolver{
		lister:  opts.Lister,
		masks:   opts.Masks,
		creator: opts.Creator,
		match:   match,
		logger:  logger,
	}
}

// Snapshot queries the current mappings and free letters.
func (r *Resolver) Snapshot(ctx context.Context) (Snapshot, error) {
	mappings, err := r.lister.ListMappings(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	used, err := r.masks.UsedLetters()
	if err != nil {
		return Snapshot{}, err
	}

	// remembered connections that are disconnected are absent from the mask
	// but still reserve their letter
	for _, m := range mappings {
		if m.Letter != "" {
			used = used.With(m.Letter)
		}
	}

	return Snapshot{Mappings: mappings, Used: used, Free: drives.FreeLetters(used)}, nil
}

// Resolve decides where the terminal for path should start.
// Query failures and failures to reach the mapping facility are returned;
// every other outcome is a Resolution.
func (r *Resolver) Resolve(ctx context.Context, path string) (Resolution, error) {
	res := Resolution{Original: path, Path: path}

	if !unc.IsNetworkPath(path) {
		res.State = StateLocal
		r.logger.Info().Str("path", path).Msg("Not a network path, using it unchanged")
		return res, nil
	}
	r.logger.Info().Str("path", path).Msg("Detected network path")

	np, err := unc.Parse(path)
	if err != nil {
		res.State = StateParseFailed
		r.logger.Info().Err(err).Msg("Couldn't parse network path, using pushd approach")
		return res, nil
	}
	res.ServerShare = np.ServerShare()

	r.logger.Debug().
		Str("server", np.Server).
		Str("share", np.Share).
		Str("serverShare", res.ServerShare).
		Str("remainder", np.Remainder).
		Msg("Parsed network path")

	snap, err := r.Snapshot(ctx)
	if err != nil {
		return res, err
	}

	decision := Decide(np, snap, r.match)
	r.logger.Debug().
		Str("decision", decision.Kind.String()).
		Str("letter", string(decision.Letter)).
		Stringer("used", snap.Used).
		Strs("free", lettersToStrings(snap.Free)).
		Msg("Resolution decided")

	switch decision.Kind {
	case UseExisting:
		res.State = StateMappingFound
		res.Letter = decision.Letter
		res.Path = decision.Letter.Join(np.Remainder)
		r.logger.Info().
			Str("letter", string(res.Letter)).
			Str("serverShare", res.ServerShare).
			Str("path", res.Path).
			Msg("Found existing drive mapping")
		return res, nil

	case UseUNC:
		res.State = StateNoFreeLetters
		r.logger.Info().Msg("No free drive letters found, falling back to original path")
		return res, nil
	}

	res.Letter = decision.Letter
	code, err := r.creator.CreateMapping(ctx, decision.Letter, res.ServerShare)
	if err != nil {
		return res, err
	}
	res.ExitCode = code

	if code != drives.ExitSuccess {
		res.State = StateCreateFailed
		r.logger.Info().Int("result", code).Msg("Failed to create network mapping, falling back to original path")
		return res, nil
	}

	res.State = StateMappingCreated
	res.Path = decision.Letter.Join(np.Remainder)
	r.logger.Info().
		Str("letter", string(res.Letter)).
		Str("path", res.Path).
		Msg("Created network mapping")
	return res, nil
}

func lettersToStrings(letters []drives.Letter) []string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = string(l)
	}
	return out
}

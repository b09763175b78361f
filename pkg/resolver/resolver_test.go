package resolver

import (
	"context"
	"testing"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/unc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	mappings []drives.Mapping
	err      error
	calls    int
}

func (f *fakeLister) ListMappings(context.Context) ([]drives.Mapping, error) {
	f.calls++
	return f.mappings, f.err
}

type fakeMask struct {
	used drives.LetterSet
	err  error
}

func (f fakeMask) UsedLetters() (drives.LetterSet, error) {
	return f.used, f.err
}

type createCall struct {
	letter      drives.Letter
	serverShare string
}

type fakeCreator struct {
	code  int
	err   error
	calls []createCall
}

func (f *fakeCreator) CreateMapping(_ context.Context, letter drives.Letter, serverShare string) (int, error) {
	f.calls = append(f.calls, createCall{letter, serverShare})
	return f.code, f.err
}

const allButZ = drives.LetterSet(1<<25 - 1)
const allLetters = drives.LetterSet(1<<26 - 1)

func newResolver(l drives.Lister, m drives.MaskSource, c drives.Creator) *Resolver {
	return New(Options{Lister: l, Masks: m, Creator: c, Logger: zerolog.Nop()})
}

func TestResolve_LocalPathUnchanged(t *testing.T) {
	lister := &fakeLister{}
	creator := &fakeCreator{}
	r := newResolver(lister, fakeMask{}, creator)

	for _, path := range []string{`D:\work`, `C:\`, `relative\dir`, ``, `\single`} {
		res, err := r.Resolve(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, StateLocal, res.State)
		assert.Equal(t, path, res.Path)
	}
	assert.Zero(t, lister.calls, "local paths never query mappings")
	assert.Empty(t, creator.calls)
}

func TestResolve_ExistingMapping(t *testing.T) {
	lister := &fakeLister{mappings: drives.ParseListing("V:        \\\\srv1\\share1\n")}
	creator := &fakeCreator{}
	r := newResolver(lister, fakeMask{used: drives.LetterSet(0).With("C:").With("V:")}, creator)

	res, err := r.Resolve(context.Background(), `\\srv1\share1\docs`)

	require.NoError(t, err)
	assert.Equal(t, StateMappingFound, res.State)
	assert.Equal(t, `V:\docs`, res.Path)
	assert.Equal(t, drives.Letter("V:"), res.Letter)
	assert.Equal(t, `\\srv1\share1`, res.ServerShare)
	assert.Empty(t, creator.calls)
}

func TestResolve_ExistingMappingWithSpaceInShare(t *testing.T) {
	listing := "OK           V:        \\\\nas\\Shared Docs         Microsoft Windows Network\r\n"
	lister := &fakeLister{mappings: drives.ParseListing(listing)}
	creator := &fakeCreator{}
	r := newResolver(lister, fakeMask{used: drives.LetterSet(0).With("C:").With("V:")}, creator)

	for i := 0; i < 2; i++ {
		res, err := r.Resolve(context.Background(), `\\nas\Shared Docs\reports`)

		require.NoError(t, err)
		assert.Equal(t, StateMappingFound, res.State)
		assert.Equal(t, `V:\reports`, res.Path)
	}
	assert.Empty(t, creator.calls, "an existing mapping is never duplicated")
}

func TestSnapshot_ListedLettersAreNotFree(t *testing.T) {
	// a remembered but disconnected mapping is absent from the drive mask
	lister := &fakeLister{mappings: drives.ParseListing("Unavailable  Z:  \\\\srv9\\old  Microsoft Windows Network\n")}
	r := newResolver(lister, fakeMask{used: drives.LetterSet(0).With("C:")}, &fakeCreator{})

	snap, err := r.Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Used.Has("Z:"))
	assert.True(t, snap.Used.Has("C:"))
	assert.Equal(t, drives.Letter("Y:"), snap.Free[0])
}

func TestResolve_CreatesMappingOnHighestFreeLetter(t *testing.T) {
	creator := &fakeCreator{code: 0}
	r := newResolver(&fakeLister{}, fakeMask{used: allButZ}, creator)

	res, err := r.Resolve(context.Background(), `\\srv2\share2`)

	require.NoError(t, err)
	assert.Equal(t, StateMappingCreated, res.State)
	assert.Equal(t, "Z:", res.Path)
	assert.Equal(t, []createCall{{"Z:", `\\srv2\share2`}}, creator.calls)
}

func TestResolve_CreateFailureFallsBackToUNC(t *testing.T) {
	creator := &fakeCreator{code: 2}
	r := newResolver(&fakeLister{}, fakeMask{used: allButZ}, creator)

	res, err := r.Resolve(context.Background(), `\\srv2\share2`)

	require.NoError(t, err)
	assert.Equal(t, StateCreateFailed, res.State)
	assert.Equal(t, `\\srv2\share2`, res.Path)
	assert.Equal(t, 2, res.ExitCode)
	assert.False(t, res.Batch())
}

func TestResolve_NoFreeLetters(t *testing.T) {
	creator := &fakeCreator{}
	r := newResolver(&fakeLister{}, fakeMask{used: allLetters}, creator)

	res, err := r.Resolve(context.Background(), `\\srv2\share2\a`)

	require.NoError(t, err)
	assert.Equal(t, StateNoFreeLetters, res.State)
	assert.Equal(t, `\\srv2\share2\a`, res.Path)
	assert.Empty(t, creator.calls)
}

func TestResolve_ParseFailureUsesBatch(t *testing.T) {
	lister := &fakeLister{}
	r := newResolver(lister, fakeMask{}, &fakeCreator{})

	res, err := r.Resolve(context.Background(), `\\srv3`)

	require.NoError(t, err)
	assert.Equal(t, StateParseFailed, res.State)
	assert.True(t, res.Batch())
	assert.Equal(t, `\\srv3`, res.Path)
	assert.Zero(t, lister.calls)
}

func TestResolve_QueryFailuresPropagate(t *testing.T) {
	t.Run("listing", func(t *testing.T) {
		lister := &fakeLister{err: errors.New(errors.ErrMappingQuery, "net use exited with code 2")}
		r := newResolver(lister, fakeMask{}, &fakeCreator{})

		_, err := r.Resolve(context.Background(), `\\srv1\share1`)

		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingQuery))
	})

	t.Run("drive mask", func(t *testing.T) {
		mask := fakeMask{err: errors.New(errors.ErrDriveQuery, "GetLogicalDrives failed")}
		r := newResolver(&fakeLister{}, mask, &fakeCreator{})

		_, err := r.Resolve(context.Background(), `\\srv1\share1`)

		assert.True(t, errors.IsErrorCode(err, errors.ErrDriveQuery))
	})

	t.Run("creator unreachable", func(t *testing.T) {
		creator := &fakeCreator{code: -1, err: errors.New(errors.ErrMappingCreate, "mpr.dll unavailable")}
		r := newResolver(&fakeLister{}, fakeMask{}, creator)

		_, err := r.Resolve(context.Background(), `\\srv1\share1`)

		assert.True(t, errors.IsErrorCode(err, errors.ErrMappingCreate))
	})
}

func TestResolve_Idempotent(t *testing.T) {
	lister := &fakeLister{mappings: []drives.Mapping{{Letter: "V:", Target: `\\srv1\share1`}}}
	r := newResolver(lister, fakeMask{}, &fakeCreator{})

	first, err := r.Resolve(context.Background(), `\\srv1\share1\docs`)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), `\\srv1\share1\docs`)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, lister.calls, "state is queried fresh on every call")
}

func TestResolve_SubstringMatchMode(t *testing.T) {
	lister := &fakeLister{mappings: drives.ParseListing("OK  Q:  \\\\srv\\share10  Microsoft Windows Network\n")}

	exact := New(Options{Lister: lister, Masks: fakeMask{used: allButZ}, Creator: &fakeCreator{}, Logger: zerolog.Nop()})
	res, err := exact.Resolve(context.Background(), `\\srv\share1`)
	require.NoError(t, err)
	assert.Equal(t, StateMappingCreated, res.State)

	substring := New(Options{Lister: lister, Masks: fakeMask{}, Creator: &fakeCreator{}, Match: drives.MatchSubstring, Logger: zerolog.Nop()})
	res, err = substring.Resolve(context.Background(), `\\srv\share1`)
	require.NoError(t, err)
	assert.Equal(t, StateMappingFound, res.State)
	assert.Equal(t, "Q:", res.Path)
}

func TestDecide(t *testing.T) {
	np, err := unc.Parse(`\\srv\share\x`)
	require.NoError(t, err)

	tests := []struct {
		name     string
		snap     Snapshot
		expected Decision
	}{
		{
			name:     "mapping wins over free letters",
			snap:     Snapshot{Mappings: []drives.Mapping{{Letter: "M:", Target: `\\srv\share`}}, Free: []drives.Letter{"Z:"}},
			expected: Decision{Kind: UseExisting, Letter: "M:"},
		},
		{
			name:     "first free letter",
			snap:     Snapshot{Free: []drives.Letter{"Y:", "X:"}},
			expected: Decision{Kind: CreateMapping, Letter: "Y:"},
		},
		{
			name:     "nothing free",
			snap:     Snapshot{},
			expected: Decision{Kind: UseUNC},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decide(np, tt.snap, drives.MatchExact))
		})
	}
}

func TestDecisionKindString(t *testing.T) {
	assert.Equal(t, "use_existing", UseExisting.String())
	assert.Equal(t, "create_mapping", CreateMapping.String())
	assert.Equal(t, "use_unc", UseUNC.String())
	assert.Equal(t, "unknown", DecisionKind(42).String())
}

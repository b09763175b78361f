//go:build !windows

package drives

import (
	"context"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/rs/zerolog"
)

func unsupported(what string) error {
	return errors.Newf(errors.ErrUnsupported, "%s requires Windows", what)
}

type systemMask struct{}

// NewSystemMask returns a MaskSource that always fails outside Windows
func NewSystemMask() MaskSource {
	return systemMask{}
}

func (systemMask) UsedLetters() (LetterSet, error) {
	return 0, unsupported("drive letter query")
}

type wnetLister struct{}

// NewWNetLister returns a Lister that always fails outside Windows
func NewWNetLister(_ zerolog.Logger) Lister {
	return wnetLister{}
}

func (wnetLister) ListMappings(context.Context) ([]Mapping, error) {
	return nil, unsupported("WNet enumeration")
}

type wnetCreator struct{}

// NewWNetCreator returns a Creator that always fails outside Windows
func NewWNetCreator(_ Persistence, _ zerolog.Logger) Creator {
	return wnetCreator{}
}

func (wnetCreator) CreateMapping(context.Context, Letter, string) (int, error) {
	return -1, unsupported("WNetAddConnection2")
}

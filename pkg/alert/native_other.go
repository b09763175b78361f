//go:build !windows

package alert

import (
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
)

func showNative(_, _ string) error {
	return errors.New(errors.ErrUnsupported, "no native message box on this platform")
}

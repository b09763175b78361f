package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/style"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !isTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"boldUpper": formatBoldUpper,
	})
}

// PrintError writes err to w, styled when w is a terminal
func PrintError(w io.Writer, err error) {
	label := "Error:"
	code := fmt.Sprintf("(%s)", errors.GetErrorCode(err))
	if isTerminal(w) {
		label = style.ErrorStyle.Render(label)
		code = style.MutedStyle.Render(code)
	}
	fmt.Fprintf(w, "%s %v %s\n", label, err, code)
}

package launcher

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/paths"
	"github.com/spf13/afero"
)

// %CD% is expanded by cmd.exe after pushd has mapped the share to a
// temporary drive letter.
var batchTemplate = template.Must(template.New("batch").Parse(`@echo off
echo Current directory before pushd: %CD% > "{{.BatchLog}}"
pushd "{{.Path}}"
echo Result of pushd (errorlevel): %errorlevel% >> "{{.BatchLog}}"
echo Current directory after pushd: %CD% >> "{{.BatchLog}}"
echo Starting terminal with: {{.Terminal}} >> "{{.BatchLog}}"
{{.Terminal}}
echo Result of start (errorlevel): %errorlevel% >> "{{.BatchLog}}"
`))

type batchData struct {
	Path     string
	BatchLog string
	Terminal string
}

// BatchScript renders the pushd fallback script for uncPath with CRLF line endings
func BatchScript(executable, uncPath, logFile string) (string, error) {
	var buf bytes.Buffer
	err := batchTemplate.Execute(&buf, batchData{
		Path:     uncPath,
		BatchLog: paths.BatchLogPath(logFile),
		Terminal: CommandLine(executable, "%CD%"),
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrScriptWrite, "failed to render batch file")
	}
	return strings.ReplaceAll(buf.String(), "\n", "\r\n"), nil
}

// WriteBatchScript renders the script for uncPath and writes it to the script path
func (l *Launcher) WriteBatchScript(uncPath string) error {
	script, err := BatchScript(l.executable, uncPath, l.logFile)
	if err != nil {
		return err
	}

	if err := l.fs.MkdirAll(filepath.Dir(l.scriptPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrScriptWrite, "failed to create directory for %s", l.scriptPath)
	}
	if err := afero.WriteFile(l.fs, l.scriptPath, []byte(script), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrScriptWrite, "failed to write batch file %s", l.scriptPath)
	}
	return nil
}

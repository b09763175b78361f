package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/paths"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(paths.EnvTemp, t.TempDir())
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "goconemu dev")
}

func TestGenConfigCmd(t *testing.T) {
	t.Run("effective configuration", func(t *testing.T) {
		out, _, err := execute(t, "genconfig", "--terminal", `D:\ConEmu\ConEmu.exe`)

		require.NoError(t, err)
		assert.Contains(t, out, "[terminal]")
		assert.Contains(t, out, `D:\ConEmu\ConEmu.exe`)
		assert.Contains(t, out, "netuse")
	})

	t.Run("template", func(t *testing.T) {
		out, _, err := execute(t, "genconfig", "--template")

		require.NoError(t, err)
		assert.Contains(t, out, "# executable = ")
	})
}

func TestResolveCmd_Local(t *testing.T) {
	out, _, err := execute(t, "resolve", `C:\Users\me`, "--output", "json")
	require.NoError(t, err)

	var res resolver.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, resolver.StateLocal, res.State)
	assert.Equal(t, `C:\Users\me`, res.Path)
}

func TestResolveCmd_Unparseable(t *testing.T) {
	out, _, err := execute(t, "resolve", `\\srv`, "-o", "yaml")
	require.NoError(t, err)

	var res resolver.Resolution
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, resolver.StateParseFailed, res.State)
	assert.True(t, res.Batch())
}

func TestResolveCmd_Text(t *testing.T) {
	out, _, err := execute(t, "resolve", `D:\work`)

	require.NoError(t, err)
	assert.Contains(t, out, "state:")
	assert.Contains(t, out, "local")
	assert.Contains(t, out, `D:\work`)
}

func TestResolveCmd_BadOutput(t *testing.T) {
	_, _, err := execute(t, "resolve", `D:\work`, "--output", "xml")

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_DryRunLocal(t *testing.T) {
	_, stderr, err := execute(t, "--dry-run", "--no-alert", `D:\work`)

	require.NoError(t, err)
	assert.Contains(t, stderr, MsgDryRunNotice)
}

func TestRootCmd_InvalidConfigStillLaunches(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(paths.EnvTemp, tempDir)
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv("GOCONEMU_MAPPING_MATCH", "bogus")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--dry-run", "--no-alert", "-vv", `D:\work`})

	err := cmd.Execute()

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	logFile := filepath.Join(tempDir, paths.LogFileName)
	assert.Contains(t, stderr.String(), fmt.Sprintf(MsgFallbackNotice, logFile))

	data, readErr := os.ReadFile(logFile)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Failed to load configuration, using defaults")
	assert.Contains(t, string(data), "Falling back to original path")
	assert.Contains(t, string(data), "Starting command")
}

func TestRootCmd_InvalidConfigFailsSubcommands(t *testing.T) {
	t.Setenv("GOCONEMU_MAPPING_MATCH", "bogus")

	_, _, err := execute(t, "resolve", `D:\work`)

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "version")

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, `C:\a`, `C:\b`)

	assert.Error(t, err)
}

func TestRenderSnapshot(t *testing.T) {
	t.Run("mappings and free letters", func(t *testing.T) {
		var buf bytes.Buffer
		err := renderSnapshot(&buf, resolver.Snapshot{
			Mappings: []drives.Mapping{{Letter: "Z:", Target: `\\srv\data`}},
			Used:     drives.LetterSet(0).With("C:").With("Z:"),
			Free:     []drives.Letter{"Y:", "X:"},
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `\\srv\data`)
		assert.Contains(t, buf.String(), "Used letters: C: Z:")
		assert.Contains(t, buf.String(), "Free letters: Y: X:")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderSnapshot(&buf, resolver.Snapshot{}))

		assert.Contains(t, buf.String(), MsgNoMappings)
		assert.Contains(t, buf.String(), MsgNoFreeLetters)
		assert.NotContains(t, buf.String(), "Used letters")
	})
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml", "JSON"} {
		_, err := parseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := parseFormat("toml")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrLaunch, "failed to launch terminal"))

	assert.Equal(t, "Error: [LAUNCH] failed to launch terminal (LAUNCH)\n", buf.String())
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTrip(t *testing.T) {
	p, _ := isolate(t)
	cfg := validConfig()
	cfg.Mapping.Timeout = 3 * time.Second
	cfg.Logging.File = filepath.Join(t.TempDir(), "debug.log")
	cfg.Batch.Script = filepath.Join(t.TempDir(), "launch.bat")

	out, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "3s")

	path := filepath.Join(t.TempDir(), "roundtrip.toml")
	require.NoError(t, os.WriteFile(path, out, 0644))

	loaded, err := Load(LoadOptions{Paths: p, ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestTemplate(t *testing.T) {
	tmpl := Template()

	assert.Contains(t, tmpl, "[terminal]")
	assert.Contains(t, tmpl, "# executable = ")
	for _, line := range strings.Split(tmpl, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "uncommented line %q", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# header\n\n[alert]\nenabled = true\n"
	want := "# header\n\n[alert]\n# enabled = true\n"

	assert.Equal(t, want, commentOutConfigValues(in))
}

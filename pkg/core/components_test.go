package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/config"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dryRunConfig() *config.Config {
	return &config.Config{
		Terminal: config.Terminal{Executable: `D:\ConEmu\ConEmu64.exe`},
		Mapping: config.Mapping{
			Source:      config.SourceNetUse,
			Match:       drives.MatchExact,
			Persistence: drives.PersistenceDefault,
		},
		Batch:  config.Batch{Script: `C:\Temp\goconemu_launcher.bat`},
		DryRun: true,
	}
}

func TestNewComponents(t *testing.T) {
	c := NewComponents(dryRunConfig())

	require.NotNil(t, c.Resolver)
	require.NotNil(t, c.Launcher)
	require.NotNil(t, c.Alert)
	assert.Equal(t, `D:\ConEmu\ConEmu64.exe`, c.Launcher.Executable())
}

func TestNewComponents_DryRunTouchesNothing(t *testing.T) {
	cfg := dryRunConfig()
	cfg.Batch.Script = filepath.Join(t.TempDir(), "goconemu_launcher.bat")
	c := NewComponents(cfg)
	ctx := context.Background()

	script, err := c.Launcher.LaunchBatch(ctx, `\\srv`)
	require.NoError(t, err)
	assert.Equal(t, cfg.Batch.Script, script)

	_, statErr := os.Stat(script)
	assert.True(t, os.IsNotExist(statErr), "script must only be written in memory")

	assert.NoError(t, c.Launcher.Launch(ctx, `C:\Users`))
}

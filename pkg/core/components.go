package core

import (
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/alert"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/config"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/executor"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/launcher"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/logging"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/resolver"
	"github.com/spf13/afero"
)

// Components are the OS-facing collaborators built from a configuration
type Components struct {
	Resolver *resolver.Resolver
	Launcher *launcher.Launcher
	Alert    *alert.Alert
}

// NewComponents wires the resolver, launcher and alert for cfg.
// In dry-run mode no process is started, no mapping is created and the
// batch script is written to memory only.
func NewComponents(cfg *config.Config) *Components {
	runner := executor.New(executor.Options{
		DryRun: cfg.DryRun,
		Logger: logging.GetLogger("executor"),
	})

	driveLogger := logging.GetLogger("drives")

	var lister drives.Lister
	switch cfg.Mapping.Source {
	case config.SourceWNet:
		lister = drives.NewWNetLister(driveLogger)
	default:
		lister = &drives.NetUseLister{Runner: runner, Timeout: cfg.Mapping.Timeout, Logger: driveLogger}
	}

	var creator drives.Creator
	switch {
	case cfg.DryRun:
		creator = drives.DryRunCreator{Logger: driveLogger}
	case cfg.Mapping.Source == config.SourceWNet:
		creator = drives.NewWNetCreator(cfg.Mapping.Persistence, driveLogger)
	default:
		creator = &drives.NetUseCreator{
			Runner:      runner,
			Persistence: cfg.Mapping.Persistence,
			Timeout:     cfg.Mapping.Timeout,
			Logger:      driveLogger,
		}
	}

	var fs afero.Fs = afero.NewOsFs()
	if cfg.DryRun {
		fs = afero.NewMemMapFs()
	}

	return &Components{
		Resolver: resolver.New(resolver.Options{
			Lister:  lister,
			Masks:   drives.NewSystemMask(),
			Creator: creator,
			Match:   cfg.Mapping.Match,
			Logger:  logging.GetLogger("resolver"),
		}),
		Launcher: launcher.New(launcher.Options{
			Executable: cfg.Terminal.Executable,
			Runner:     runner,
			FS:         fs,
			ScriptPath: cfg.Batch.Script,
			LogFile:    cfg.Logging.File,
			Logger:     logging.GetLogger("launcher"),
		}),
		Alert: alert.New(alert.Options{
			Enabled: cfg.Alert.Enabled,
			Native:  true,
			Logger:  logging.GetLogger("alert"),
		}),
	}
}

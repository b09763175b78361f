package config

import (
	"time"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/drives"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
)

// Mapping sources
const (
	SourceNetUse = "netuse"
	SourceWNet   = "wnet"
)

// Config is the effective goconemu configuration
type Config struct {
	Terminal Terminal `koanf:"terminal" toml:"terminal" yaml:"terminal" json:"terminal"`
	Mapping  Mapping  `koanf:"mapping" toml:"mapping" yaml:"mapping" json:"mapping"`
	Logging  Logging  `koanf:"logging" toml:"logging" yaml:"logging" json:"logging"`
	Batch    Batch    `koanf:"batch" toml:"batch" yaml:"batch" json:"batch"`
	Alert    Alert    `koanf:"alert" toml:"alert" yaml:"alert" json:"alert"`

	// DryRun is only ever set from the command line
	DryRun bool `koanf:"dry_run" toml:"-" yaml:"-" json:"-"`
}

// Terminal holds the terminal emulator settings
type Terminal struct {
	Executable string `koanf:"executable" toml:"executable" yaml:"executable" json:"executable"`
}

// Mapping holds drive mapping settings
type Mapping struct {
	// Source is SourceNetUse or SourceWNet
	Source string `koanf:"source" toml:"source" yaml:"source" json:"source"`
	// Match selects how a listed mapping is compared to \\server\share
	Match drives.MatchMode `koanf:"match" toml:"match" yaml:"match" json:"match"`
	// Persistence is passed to the creator
	Persistence drives.Persistence `koanf:"persistence" toml:"persistence" yaml:"persistence" json:"persistence"`
	// Timeout bounds each net use call. Zero means no bound.
	Timeout time.Duration `koanf:"timeout" toml:"timeout" yaml:"timeout" json:"timeout"`
}

// Logging holds log file settings
type Logging struct {
	File string `koanf:"file" toml:"file" yaml:"file" json:"file"`
}

// Batch holds the pushd fallback script settings
type Batch struct {
	Script string `koanf:"script" toml:"script" yaml:"script" json:"script"`
}

// Alert controls the failure message box
type Alert struct {
	Enabled bool `koanf:"enabled" toml:"enabled" yaml:"enabled" json:"enabled"`
}

// Validate checks enumerated values and required fields
func (c *Config) Validate() error {
	if c.Terminal.Executable == "" {
		return errors.New(errors.ErrConfigValid, "terminal.executable must not be empty")
	}

	switch c.Mapping.Source {
	case SourceNetUse, SourceWNet:
	default:
		return errors.Newf(errors.ErrConfigValid, "mapping.source must be %q or %q", SourceNetUse, SourceWNet).
			WithDetail("value", c.Mapping.Source)
	}

	switch c.Mapping.Match {
	case drives.MatchExact, drives.MatchSubstring:
	default:
		return errors.Newf(errors.ErrConfigValid, "mapping.match must be %q or %q", drives.MatchExact, drives.MatchSubstring).
			WithDetail("value", string(c.Mapping.Match))
	}

	if !c.Mapping.Persistence.Valid() {
		return errors.New(errors.ErrConfigValid, "mapping.persistence must be one of default, yes, no").
			WithDetail("value", string(c.Mapping.Persistence))
	}

	if c.Mapping.Timeout < 0 {
		return errors.New(errors.ErrConfigValid, "mapping.timeout must not be negative").
			WithDetail("value", c.Mapping.Timeout.String())
	}

	return nil
}

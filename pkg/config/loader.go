package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they become keys:
// GOCONEMU_TERMINAL_EXECUTABLE sets terminal.executable.
const EnvPrefix = "GOCONEMU_"

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile replaces the default user file. Unlike the default, it must exist.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path (terminal.executable)
	Overrides map[string]interface{}
	// Paths supplies default file locations. Defaults to paths.New().
	Paths *paths.Paths
	// DefaultsOnly skips the user file and the environment. It is used to get
	// a working configuration after the full load failed.
	DefaultsOnly bool
}

// Load builds the effective configuration. Later layers win:
// embedded defaults, user file, environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	p := opts.Paths
	if p == nil {
		p = paths.New()
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	if !opts.DefaultsOnly {
		// 2. User file
		configFile := opts.ConfigFile
		required := configFile != ""
		if !required {
			configFile = p.ConfigFilePath()
		}
		if err := loadFile(k, configFile, required); err != nil {
			return nil, err
		}

		// 3. Environment
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load command-line overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Post-process
	applyPathDefaults(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func applyPathDefaults(cfg *Config, p *paths.Paths) {
	if cfg.Logging.File == "" {
		cfg.Logging.File = p.LogFilePath()
	}
	if cfg.Batch.Script == "" {
		cfg.Batch.Script = p.BatchScriptPath()
	}
}

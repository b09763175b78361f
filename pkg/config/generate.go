package config

import (
	"strings"

	"github.com/BenjaminKobjolke/FMANGoConemu/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Marshal renders cfg as a TOML document that Load accepts back
func Marshal(cfg *Config) ([]byte, error) {
	out, err := gotoml.Marshal(ToMap(cfg))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}

// ToMap converts cfg to nested maps keyed like the config file.
// Durations are rendered as strings ("5s") so they survive a round trip.
func ToMap(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"terminal": map[string]interface{}{
			"executable": cfg.Terminal.Executable,
		},
		"mapping": map[string]interface{}{
			"source":      cfg.Mapping.Source,
			"match":       string(cfg.Mapping.Match),
			"persistence": string(cfg.Mapping.Persistence),
			"timeout":     cfg.Mapping.Timeout.String(),
		},
		"logging": map[string]interface{}{
			"file": cfg.Logging.File,
		},
		"batch": map[string]interface{}{
			"script": cfg.Batch.Script,
		},
		"alert": map[string]interface{}{
			"enabled": cfg.Alert.Enabled,
		},
	}
}

// Template returns the defaults file with every value commented out, ready
// to be saved as a user config file
func Template() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out every assignment line, leaving
// comments, blank lines and section headers as they are
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

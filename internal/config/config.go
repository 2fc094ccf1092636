package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime defaults that can be supplied by an optional YAML
// file. Command-line flags override anything loaded here.
type Config struct {
	// TimePadFactor multiplies each phrase duration when emitting SSML.
	TimePadFactor float64 `yaml:"time_pad_factor"`

	// VTTCueStyle is the positioning/style suffix appended to WebVTT
	// time-range lines, e.g. "align:middle line:90%".
	VTTCueStyle string `yaml:"vtt_cue_style"`
}

func Default() *Config {
	return &Config{
		TimePadFactor: 1.0,
	}
}

// Load reads the config file at path on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.TimePadFactor <= 0 {
		return nil, fmt.Errorf("time_pad_factor must be positive, got %g", cfg.TimePadFactor)
	}
	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Density thresholds for deciding when a slide is split
	Density *Density `yaml:"density,omitempty" json:"density,omitempty"`
	// Fragment flush limits used while splitting
	Split *Split `yaml:"split,omitempty" json:"split,omitempty"`
	// TrueType font file used by the image exporter
	FontFile string `yaml:"fontFile,omitempty" json:"fontFile,omitempty"`
	// Pause between image files in milliseconds
	ImageDelayMs *int `yaml:"imageDelayMs,omitempty" json:"imageDelayMs,omitempty"`
	// Conditions for overriding the selected layout per slide
	Defaults []DefaultCondition `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

type Density struct {
	SplitScore   *float64 `yaml:"splitScore,omitempty" json:"splitScore,omitempty"`
	SplitBullets *int     `yaml:"splitBullets,omitempty" json:"splitBullets,omitempty"`
}

type Split struct {
	MaxBullets *int `yaml:"maxBullets,omitempty" json:"maxBullets,omitempty"`
	MaxChars   *int `yaml:"maxChars,omitempty" json:"maxChars,omitempty"`
}

type DefaultCondition struct {
	If     string `yaml:"if" json:"if"`                             // condition to check
	Layout string `yaml:"layout,omitempty" json:"layout,omitempty"` // layout name to apply if condition is true
	Skip   *bool  `yaml:"skip,omitempty" json:"skip,omitempty"`     // whether to skip the slide if condition is true
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/slidegen/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/slidegen/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "slidegen")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "slidegen")
	}
	return configHomePath
}

func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "slidegen")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "slidegen")
	}
	return stateHomePath
}

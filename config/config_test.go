package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
		check      func(t *testing.T, cfg *Config)
	}{
		{
			name: "thresholds and defaults",
			configYAML: `
density:
  splitScore: 20
  splitBullets: 10
split:
  maxBullets: 5
fontFile: /usr/share/fonts/test.ttf
imageDelayMs: 250
defaults:
  - if: index == 0
    layout: TITLE_SLIDE
  - if: bullets > 12
    skip: true
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Density == nil || cfg.Density.SplitScore == nil || *cfg.Density.SplitScore != 20 {
					t.Errorf("Density.SplitScore = %v, want 20", cfg.Density)
				}
				if cfg.Density.SplitBullets == nil || *cfg.Density.SplitBullets != 10 {
					t.Errorf("Density.SplitBullets = %v, want 10", cfg.Density.SplitBullets)
				}
				if cfg.Split == nil || cfg.Split.MaxBullets == nil || *cfg.Split.MaxBullets != 5 {
					t.Errorf("Split.MaxBullets = %v, want 5", cfg.Split)
				}
				if cfg.Split.MaxChars != nil {
					t.Errorf("Split.MaxChars = %v, want nil", *cfg.Split.MaxChars)
				}
				if cfg.FontFile != "/usr/share/fonts/test.ttf" {
					t.Errorf("FontFile = %q", cfg.FontFile)
				}
				if cfg.ImageDelayMs == nil || *cfg.ImageDelayMs != 250 {
					t.Errorf("ImageDelayMs = %v, want 250", cfg.ImageDelayMs)
				}
				if len(cfg.Defaults) != 2 {
					t.Fatalf("Defaults = %d, want 2", len(cfg.Defaults))
				}
				if cfg.Defaults[0].Layout != "TITLE_SLIDE" {
					t.Errorf("Defaults[0].Layout = %q", cfg.Defaults[0].Layout)
				}
				if cfg.Defaults[1].Skip == nil || !*cfg.Defaults[1].Skip {
					t.Errorf("Defaults[1].Skip = %v, want true", cfg.Defaults[1].Skip)
				}
			},
		},
		{
			name:       "empty config",
			configYAML: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Density != nil || cfg.Split != nil || len(cfg.Defaults) != 0 {
					t.Errorf("expected empty config, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", tmpDir)

			// Reset configHomePath
			configHomePath = ""

			cfgDir := filepath.Join(tmpDir, "slidegen")
			if err := os.MkdirAll(cfgDir, 0o755); err != nil {
				t.Fatalf("failed to create config directory: %v", err)
			}
			configPath := filepath.Join(cfgDir, "config.yml")
			if err := os.WriteFile(configPath, []byte(tt.configYAML), 0o644); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	configHomePath = ""

	cfgDir := filepath.Join(tmpDir, "slidegen")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yml"), []byte("fontFile: base.ttf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config-work.yml"), []byte("fontFile: work.ttf"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("work")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FontFile != "work.ttf" {
		t.Errorf("FontFile = %q, want %q", cfg.FontFile, "work.ttf")
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FontFile != "base.ttf" {
		t.Errorf("FontFile = %q, want %q", cfg.FontFile, "base.ttf")
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	configHomePath = ""

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
}

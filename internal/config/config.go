package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the generator settings
type Config struct {
	AndroidResDir    string `json:"android_res_dir" env:"NEONICONS_ANDROID_RES"`
	IOSAppIconSetDir string `json:"ios_appiconset_dir" env:"NEONICONS_IOS_APPICONSET"`
	ManifestPath     string `json:"manifest_path,omitempty" env:"NEONICONS_MANIFEST"` // empty disables the manifest
	ICOPath          string `json:"ico_path,omitempty" env:"NEONICONS_ICO"`           // empty skips the Windows icon
	LogLevel         string `json:"log_level" env:"NEONICONS_LOG_LEVEL"`
}

// Default returns the default configuration. Paths are relative to the
// scripts directory of the app project.
func Default() *Config {
	return &Config{
		AndroidResDir:    "../android/app/src/main/res",
		IOSAppIconSetDir: "../ios/Runner/Assets.xcassets/AppIcon.appiconset",
		LogLevel:         "info",
	}
}

// Load returns the defaults overlaid with the JSON file at path (if any)
// and then with environment variables.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the config from disk. A missing file leaves c unchanged.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Use defaults
		}
		return fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// LoadEnv applies NEONICONS_* environment overrides
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/spf13/viper"
)

// parseFile reads a TOML config file. A missing optional file yields nil.
func parseFile(path string, required bool) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			logger.Log.WithField("path", path).Debug("Config file not found, relying on environment")
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := &Settings{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	logger.Log.WithField("path", path).Debug("Loaded config file")
	return cfg, nil
}

// Save writes settings as TOML, creating parent directories as needed.
// Fields left at their defaults are not written.
func Save(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating config directory: %v", ErrConfig, err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("steam.api_key", s.Steam.APIKey)
	v.Set("steam.user_id", s.Steam.UserID)
	if s.Steam.BaseURL != "" && s.Steam.BaseURL != DefaultBaseURL {
		v.Set("steam.base_url", s.Steam.BaseURL)
	}
	if s.Steam.Timeout != 0 && s.Steam.Timeout != DefaultTimeout {
		v.Set("steam.timeout", s.Steam.Timeout.String())
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrConfig, path, err)
	}
	return nil
}

// Package config loads the Steam credentials used by achievement-hunter.
//
// Settings are layered: environment variables (prefixed with
// ACHIEVEMENT_HUNTER_) override the TOML file, and the file overrides the
// built-in defaults. The resulting [Settings] value is built once at startup
// and handed to whoever needs it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// ErrConfig is returned for any missing or malformed configuration.
var ErrConfig = errors.New("invalid configuration")

const (
	dirName   = "achievement_hunter"
	fileName  = "config.toml"
	envPrefix = "ACHIEVEMENT_HUNTER_"

	DefaultBaseURL = "https://api.steampowered.com"
	DefaultTimeout = 10 * time.Second
)

type Steam struct {
	APIKey  string        `mapstructure:"api_key" env:"API_KEY"`
	UserID  string        `mapstructure:"user_id" env:"USER_ID"`
	BaseURL string        `mapstructure:"base_url" env:"BASE_URL"`
	Timeout time.Duration `mapstructure:"timeout" env:"TIMEOUT"`
}

type Settings struct {
	Steam Steam `mapstructure:"steam" envPrefix:"STEAM_"`
}

func defaults() *Settings {
	return &Settings{
		Steam: Steam{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
	}
}

// DefaultPath returns where the config file lives when no path is given.
func DefaultPath() (string, error) {
	if runtime.GOOS == "windows" {
		return filepath.Join(`C:\ProgramData`, dirName, ".config", dirName, fileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot determine home directory: %v", ErrConfig, err)
	}
	return filepath.Join(home, ".config", dirName, fileName), nil
}

// Load builds the settings. An explicit path must exist; when path is empty
// the default location is used and may be absent as long as the environment
// supplies the credentials.
func Load(path string) (*Settings, error) {
	required := path != ""
	if !required {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	return newConfigBuilder().
		withEnv().
		withFile(path, required).
		withDefaults().
		build()
}

func (s *Settings) validate() error {
	var errs []error
	if s.Steam.APIKey == "" {
		errs = append(errs, errors.New("steam.api_key is not set"))
	}
	if s.Steam.UserID == "" {
		errs = append(errs, errors.New("steam.user_id is not set"))
	}
	if s.Steam.Timeout < 0 {
		errs = append(errs, fmt.Errorf("steam.timeout must not be negative, got %s", s.Steam.Timeout))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
	}
	return nil
}

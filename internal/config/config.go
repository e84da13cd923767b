package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"mdpo/internal/logging"
	"mdpo/internal/wrapwidth"
	"mdpo/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "mdpo" // application name used for config directory

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "MDPO_CONFIG_PATH"

// Config holds user configuration for the mdpo file helpers.
type Config struct {
	// Encoding is used to read input files and write outputs.
	Encoding string `yaml:"encoding"`
	// IgnorePaths are literal entries passed to fileops.FilterPaths.
	IgnorePaths []string `yaml:"ignore_paths"`
	// WrapWidths are the widths fixtures are checked at.
	WrapWidths []wrapwidth.WrapWidth `yaml:"wrap_widths"`
}

// ConfigPath returns the config file path for the current platform
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return fileops.ExpandPath(p)
	}
	configPath := filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Encoding:    fileops.DefaultEncoding,
		IgnorePaths: []string{},
		WrapWidths:  wrapwidth.DefaultWidths(),
	}
}

// Load loads the config from the standard location. A missing file yields
// the defaults.
func Load() (*Config, error) {
	return LoadOrDefault(ConfigPath())
}

// LoadOrDefault loads path, falling back to DefaultConfig when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug("No config file, using defaults", "path", path)
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// LoadFrom loads config from a specific path. Fields absent from the file keep
// their default values.
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the encoding resolves and that widths are usable.
func (c *Config) Validate() error {
	if _, err := fileops.LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if len(c.WrapWidths) == 0 {
		return fmt.Errorf("wrap_widths must not be empty")
	}
	return nil
}

// Save writes the config to the standard location
func (c *Config) Save() (bool, error) {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path and reports whether the stored
// file changed.
func (c *Config) SaveTo(path string) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	if err := fileops.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return false, fmt.Errorf("failed to encode config: %w", err)
	}

	if err := createPrivateFile(path); err != nil {
		return false, fmt.Errorf("failed to create config file: %w", err)
	}

	changed, err := fileops.SaveFileCheckingFileChanged(path, string(data), fileops.DefaultEncoding)
	if err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}

	// Files from older versions or other tools may be wider than 600
	if err := os.Chmod(path, 0600); err != nil {
		return changed, fmt.Errorf("failed to set config permissions: %w", err)
	}

	if changed {
		logging.Info("Configuration saved", "path", path)
	}
	return changed, nil
}

// createPrivateFile creates an empty file with mode 0600 if path does not
// exist yet, so config content is never written to a world-readable file.
func createPrivateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return f.Close()
}

package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/sheet"
)

// Terminal defaults. The engine works in rows here, so the handle is one row
// and any whole-row pointer movement leaves the dead zone.
const (
	DefaultHandleRows   = 1
	DefaultDeadZoneRows = 0.5
	DefaultKeyboardRows = 3
	DefaultTheme        = "dark-purple"
)

// Spring shapes the settle animation.
type Spring struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// Config holds the application configuration
type Config struct {
	SnapPoints   []float64 `yaml:"snap_points"`   // Fractions of usable height, each in (0,1]
	DefaultIndex int       `yaml:"default_index"` // Initial snap point, indexing SnapPoints
	HandleHeight float64   `yaml:"handle_height"` // Rows left visible when hidden
	DeadZone     float64   `yaml:"dead_zone"`     // Rows of travel before a drag begins
	Spring       Spring    `yaml:"spring"`
	FPS          int       `yaml:"fps"`
	KeyboardRows int       `yaml:"keyboard_rows"` // Height of the input bar when open
	Theme        string    `yaml:"theme,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// Default returns a config with every field at its default, not yet bound to a file.
func Default() *Config {
	opts := sheet.DefaultOptions()
	return &Config{
		SnapPoints:   opts.Fractions,
		DefaultIndex: opts.DefaultIndex,
		HandleHeight: DefaultHandleRows,
		DeadZone:     DefaultDeadZoneRows,
		Spring: Spring{
			Frequency: opts.Frequency,
			Damping:   opts.Damping,
		},
		FPS:          opts.FPS,
		KeyboardRows: DefaultKeyboardRows,
		Theme:        DefaultTheme,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/roamly/config.yaml when XDG_CONFIG_HOME
// is set, and ~/.roamly/config.yaml otherwise.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "roamly", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".roamly", "config.yaml"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing file yields the defaults. Fields absent from the file keep their
// default values. When the file parses but fails validation, the parsed
// config is returned together with the KindConfig error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("default path", err)
		}
		path = p
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the config can build a sheet and a host.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.sheetOptions().Validate(); err != nil {
		return err
	}
	if c.KeyboardRows < 1 {
		return errors.ConfigInvalid("keyboard_rows must be at least 1")
	}
	return nil
}

// Save writes the config to its file. The new contents replace the old file
// in a single rename so a crash never leaves a truncated config behind.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return errors.ConfigSaveFailed("default path", err)
		}
		path = p
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.ConfigSaveFailed(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Path returns the file the config was loaded from and saves to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetPath rebinds the config to a different file.
func (c *Config) SetPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// SheetOptions converts the config into engine options.
func (c *Config) SheetOptions() sheet.Options {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sheetOptions()
}

func (c *Config) sheetOptions() sheet.Options {
	return sheet.Options{
		Fractions:    append([]float64(nil), c.SnapPoints...),
		DefaultIndex: c.DefaultIndex,
		HandleHeight: c.HandleHeight,
		DeadZone:     c.DeadZone,
		Frequency:    c.Spring.Frequency,
		Damping:      c.Spring.Damping,
		FPS:          c.FPS,
	}
}

// GetSnapPoints returns a copy of the snap fractions
func (c *Config) GetSnapPoints() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.SnapPoints...)
}

// SetSnapPoints replaces the snap fractions and default index
func (c *Config) SetSnapPoints(fractions []float64, defaultIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SnapPoints = append([]float64(nil), fractions...)
	c.DefaultIndex = defaultIndex
}

// GetKeyboardRows returns the input bar height
func (c *Config) GetKeyboardRows() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.KeyboardRows
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

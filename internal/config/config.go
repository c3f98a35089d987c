package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"selectdrop/internal/eventbus"
)

// ClosePolicy decides whether picking an option closes the panel
type ClosePolicy string

const (
	// CloseAlways closes after every pick, in both modes
	CloseAlways ClosePolicy = "always"
	// CloseSingleOnly keeps the panel open while picking in multi select
	CloseSingleOnly ClosePolicy = "single-only"
)

// DefaultPlaceholder is shown on the trigger when nothing is selected and no
// placeholder was configured
const DefaultPlaceholder = "Pick your item"

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	CatalogFile string         `toml:"catalog_file,omitempty"`
	Select      SelectSettings `toml:"select"`
}

// SelectSettings mirrors the props of the select component
type SelectSettings struct {
	Multiple    bool        `toml:"multiple"`
	WithSearch  bool        `toml:"with_search"`
	Outline     bool        `toml:"outline"`
	Label       string      `toml:"label"`
	Placeholder string      `toml:"placeholder"`
	ZIndex      int         `toml:"z_index"`
	UsePortal   bool        `toml:"use_portal"`
	ClosePolicy ClosePolicy `toml:"close_policy"`
}

// PlaceholderText returns the configured placeholder or the default one
func (s SelectSettings) PlaceholderText() string {
	if s.Placeholder != "" {
		return s.Placeholder
	}
	return DefaultPlaceholder
}

// Validate checks settings that cannot be represented by the zero value
func (s SelectSettings) Validate() error {
	switch s.ClosePolicy {
	case CloseAlways, CloseSingleOnly:
		return nil
	default:
		return fmt.Errorf("unknown close policy %q (want %q or %q)", s.ClosePolicy, CloseAlways, CloseSingleOnly)
	}
}

// ParseClosePolicy converts a flag value into a ClosePolicy
func ParseClosePolicy(v string) (ClosePolicy, error) {
	p := ClosePolicy(strings.ToLower(strings.TrimSpace(v)))
	if err := (SelectSettings{ClosePolicy: p}).Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "selectdrop", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Select.ClosePolicy == "" {
		cfg.Select.ClosePolicy = CloseAlways
	}
	if err := cfg.Select.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Select: SelectSettings{
			Multiple:    false,
			WithSearch:  true,
			Outline:     true,
			ZIndex:      1100,
			UsePortal:   true,
			ClosePolicy: CloseAlways,
		},
	}
}

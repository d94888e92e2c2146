package config

import (
	"os"
	"path/filepath"
	"runtime"

	apperrors "github.com/darksworm/lumina/pkg/errors"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Default theme constant - easy to change
const DefaultThemeName = "tokyo-night"

// DefaultCatalogSource is read relative to the working directory.
const DefaultCatalogSource = "app.json"

// DefaultStartPage is shown when neither flag nor config picks a page.
const DefaultStartPage = "landing"

// Config represents the complete lumina configuration
type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	Appearance AppearanceConfig `toml:"appearance"`
	UI         UIConfig         `toml:"ui"`
	Clipboard  ClipboardConfig  `toml:"clipboard,omitempty"`
}

// CatalogConfig says where the product catalog comes from
type CatalogConfig struct {
	Source string `toml:"source"` // File path or http(s) URL
}

// AppearanceConfig holds theme and visual settings
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// UIConfig holds startup UI preferences
type UIConfig struct {
	StartPage string `toml:"start_page"` // "landing" or "catalog"
}

// ClipboardConfig holds clipboard settings
type ClipboardConfig struct {
	CopyCommand string `toml:"copy_command,omitempty"` // e.g. "xclip -selection clipboard"
}

// GetConfigPath returns the path to the lumina configuration file
func GetConfigPath() string {
	if configPath := os.Getenv("LUMINA_CONFIG"); configPath != "" {
		return configPath
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "lumina", "config.toml")
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "lumina", "config.toml")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "lumina", "config.toml")
	}
}

// GetDefaultConfig returns a config with sensible defaults
func GetDefaultConfig() *Config {
	return &Config{
		Catalog:    CatalogConfig{Source: DefaultCatalogSource},
		Appearance: AppearanceConfig{Theme: DefaultThemeName},
		UI:         UIConfig{StartPage: DefaultStartPage},
	}
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return apperrors.ConfigError(apperrors.CodeDotEnv, "failed to load .env file").
			WithCause(err).
			WithContext("path", path)
	}
	return nil
}

// LoadConfig loads the configuration with fallback to defaults, then applies
// LUMINA_CATALOG and LUMINA_THEME overrides.
func LoadConfig() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, apperrors.ConfigError(apperrors.CodeConfigRead, "failed to read config").
			WithCause(err).
			WithContext("path", configPath)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.ConfigError(apperrors.CodeConfigParse, "failed to parse config").
			WithCause(err).
			WithContext("path", configPath)
	}

	// Apply defaults for missing fields
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = DefaultCatalogSource
	}
	if cfg.Appearance.Theme == "" {
		cfg.Appearance.Theme = DefaultThemeName
	}
	if cfg.UI.StartPage == "" {
		cfg.UI.StartPage = DefaultStartPage
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LUMINA_CATALOG"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("LUMINA_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
}

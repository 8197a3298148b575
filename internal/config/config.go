// Package config loads and saves mealplan's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
)

// DefaultWeeklyBudget is the weekly grocery budget when none is configured.
const DefaultWeeklyBudget = 150.0

// Config holds all mealplan configuration.
type Config struct {
	Budget     BudgetConfig     `toml:"budget"`
	Household  HouseholdConfig  `toml:"household"`
	Storage    StorageConfig    `toml:"storage"`
	Export     ExportConfig     `toml:"export"`
	Server     ServerConfig     `toml:"server"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// BudgetConfig holds the weekly grocery budget.
type BudgetConfig struct {
	Weekly float64 `toml:"weekly"`
}

// HouseholdConfig optionally replaces the built-in household.
type HouseholdConfig struct {
	Members []MemberConfig `toml:"members,omitempty"`
}

// MemberConfig is one configured household member.
type MemberConfig struct {
	Name      string `toml:"name"`
	Age       int    `toml:"age"`
	Gender    string `toml:"gender"`
	Activity  string `toml:"activity"`
	Primary   bool   `toml:"primary,omitempty"`
	SortOrder int    `toml:"sort_order"`
}

// StorageConfig selects the receipt ledger.
type StorageConfig struct {
	Driver string `toml:"driver"`
	Path   string `toml:"path,omitempty"`
	DSN    string `toml:"dsn,omitempty"`
}

// ExportConfig selects where weekly reports are written.
type ExportConfig struct {
	Driver    string `toml:"driver"`
	Dir       string `toml:"dir,omitempty"`
	Bucket    string `toml:"bucket,omitempty"`
	Region    string `toml:"region,omitempty"`
	Endpoint  string `toml:"endpoint,omitempty"`
	Prefix    string `toml:"prefix,omitempty"`
	PathStyle bool   `toml:"path_style,omitempty"`
}

// ServerConfig holds the local daemon settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Budget:     BudgetConfig{Weekly: DefaultWeeklyBudget},
		Storage:    StorageConfig{Driver: "sqlite"},
		Export:     ExportConfig{Driver: "fs", Region: "us-east-1"},
		Server:     ServerConfig{Addr: "127.0.0.1:8788"},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mealplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mealplan")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the ledger and exports.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mealplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mealplan")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg, err := LoadFrom(ConfigPath())
	if err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg), nil
}

// LoadFrom reads the config file at path without environment overrides.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's own config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// ApplyEnv overlays MEALPLAN_* environment variables onto cfg.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("MEALPLAN_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("MEALPLAN_DATABASE_URL"); v != "" {
		cfg.Storage.DSN = v
		if os.Getenv("MEALPLAN_STORAGE_DRIVER") == "" {
			cfg.Storage.Driver = "postgres"
		}
	}
	if v := os.Getenv("MEALPLAN_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("MEALPLAN_EXPORT_DRIVER"); v != "" {
		cfg.Export.Driver = v
	}
	if v := os.Getenv("MEALPLAN_S3_BUCKET"); v != "" {
		cfg.Export.Bucket = v
		if os.Getenv("MEALPLAN_EXPORT_DRIVER") == "" {
			cfg.Export.Driver = "s3"
		}
	}
	if v := os.Getenv("MEALPLAN_S3_REGION"); v != "" {
		cfg.Export.Region = v
	}
	if v := os.Getenv("MEALPLAN_S3_ENDPOINT"); v != "" {
		cfg.Export.Endpoint = v
	}
	if v := os.Getenv("MEALPLAN_S3_PATH_STYLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Export.PathStyle = b
		}
	}
	if v := os.Getenv("MEALPLAN_BUDGET"); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimPrefix(v, "$"), 64); err == nil {
			cfg.Budget.Weekly = f
		}
	}
	return cfg
}

// WeeklyBudget returns the configured budget, never negative.
func (c Config) WeeklyBudget() float64 {
	if c.Budget.Weekly < 0 {
		return 0
	}
	return c.Budget.Weekly
}

// LedgerPath returns the sqlite ledger file.
func (c Config) LedgerPath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return filepath.Join(DataDir(), "ledger.db")
}

// ExportDir returns the local export directory.
func (c Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return filepath.Join(DataDir(), "exports")
}

// Members returns the configured household, or the built-in one when the
// config lists no members.
func (c Config) Members() []model.Member {
	if len(c.Household.Members) == 0 {
		return household.Seed()
	}
	out := make([]model.Member, 0, len(c.Household.Members))
	for i, m := range c.Household.Members {
		out = append(out, model.Member{
			ID:        fmt.Sprintf("%s-%d", strings.ToLower(m.Name), i),
			Name:      m.Name,
			Age:       m.Age,
			Gender:    model.Gender(strings.ToUpper(m.Gender)),
			Activity:  model.ActivityLevel(strings.ToLower(m.Activity)),
			Primary:   m.Primary,
			SortOrder: m.SortOrder,
		})
	}
	return out
}

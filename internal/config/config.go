package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/harrison/docnav/internal/fileutil"
)

// FileName is the optional per-root configuration file. It is a dotfile, so
// the scanner never lists it as a page.
const FileName = ".docnav.yaml"

// DashboardConfig represents dashboard generation options
type DashboardConfig struct {
	// Title is the heading of the root dashboard
	Title string `yaml:"title"`

	// Welcome is the introduction shown on the root dashboard
	Welcome string `yaml:"welcome"`

	// Overwrite replaces existing README.md files
	Overwrite bool `yaml:"overwrite"`
}

// SidebarConfig represents sidebar generation options
type SidebarConfig struct {
	// Out is the combined sidebar file, relative to the root
	Out string `yaml:"out"`

	// PerFolder writes a _sidebar.md into every folder instead of one file
	PerFolder bool `yaml:"per_folder"`

	// IncludeNonMarkdown lists every file, not only .md pages
	IncludeNonMarkdown bool `yaml:"include_non_md"`
}

// Config represents docnav configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Ignore lists extra entry names excluded from every scan
	Ignore []string `yaml:"ignore"`

	// TitleOverrides maps folder names to curated display titles
	TitleOverrides map[string]string `yaml:"title_overrides"`

	// Dashboard contains dashboard generation options
	Dashboard DashboardConfig `yaml:"dashboard"`

	// Sidebar contains sidebar generation options
	Sidebar SidebarConfig `yaml:"sidebar"`
}

// DefaultTitleOverrides returns the curated titles shipped with docnav.
func DefaultTitleOverrides() map[string]string {
	return map[string]string{
		"daily":           "📅 Daily Log",
		"projects":        "🧪 Personal Projects",
		"learning-note":   "📖 Learning Notes",
		"open-sources":    "🌏 Open Source Contributions",
		"school-lab":      "🏫 School Lab / Internship",
		"school-courses":  "📚 School Courses",
		"reviews":         "⭐ Reviews",
		"airflow-contrib": "🌍 Airflow Contributions",
	}
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		Ignore:         slices.Clone(fileutil.DefaultIgnore),
		TitleOverrides: DefaultTitleOverrides(),
		Dashboard: DashboardConfig{
			Title:     "📘 My Personal Dashboard",
			Welcome:   "Welcome to my self-record workspace.  \nUse this dashboard to track what I do, what I learn, and how I grow.",
			Overwrite: false,
		},
		Sidebar: SidebarConfig{
			Out:                "_sidebar.md",
			PerFolder:          false,
			IncludeNonMarkdown: false,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	for _, name := range fileCfg.Ignore {
		if !slices.Contains(cfg.Ignore, name) {
			cfg.Ignore = append(cfg.Ignore, name)
		}
	}
	// File overrides win over the shipped table entry by entry.
	maps.Copy(cfg.TitleOverrides, fileCfg.TitleOverrides)

	if fileCfg.Dashboard.Title != "" {
		cfg.Dashboard.Title = fileCfg.Dashboard.Title
	}
	if fileCfg.Dashboard.Welcome != "" {
		cfg.Dashboard.Welcome = fileCfg.Dashboard.Welcome
	}
	if fileCfg.Sidebar.Out != "" {
		cfg.Sidebar.Out = fileCfg.Sidebar.Out
	}

	// Booleans default to false, so presence in the file is what matters.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if section, ok := rawMap["dashboard"].(map[string]interface{}); ok {
			if _, exists := section["overwrite"]; exists {
				cfg.Dashboard.Overwrite = fileCfg.Dashboard.Overwrite
			}
		}
		if section, ok := rawMap["sidebar"].(map[string]interface{}); ok {
			if _, exists := section["per_folder"]; exists {
				cfg.Sidebar.PerFolder = fileCfg.Sidebar.PerFolder
			}
			if _, exists := section["include_non_md"]; exists {
				cfg.Sidebar.IncludeNonMarkdown = fileCfg.Sidebar.IncludeNonMarkdown
			}
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, overwrite *bool, out *string, perFolder *bool, includeNonMarkdown *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if overwrite != nil {
		c.Dashboard.Overwrite = *overwrite
	}
	if out != nil {
		c.Sidebar.Out = *out
	}
	if perFolder != nil {
		c.Sidebar.PerFolder = *perFolder
	}
	if includeNonMarkdown != nil {
		c.Sidebar.IncludeNonMarkdown = *includeNonMarkdown
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Dashboard.Title == "" {
		return fmt.Errorf("dashboard.title cannot be empty")
	}

	// The combined sidebar must land inside the root.
	if !filepath.IsLocal(c.Sidebar.Out) {
		return fmt.Errorf("sidebar.out %q must be a relative path inside the root", c.Sidebar.Out)
	}

	for _, name := range c.Ignore {
		if name == "" || name == fileutil.IndexName {
			return fmt.Errorf("ignore entry %q is not allowed", name)
		}
	}

	return nil
}

// ScanOptions returns the scanner configuration for a run. includeAll widens
// the page predicate to every file; only sidebars honor it.
func (c *Config) ScanOptions(includeAll bool) fileutil.ScanOptions {
	return fileutil.ScanOptions{
		Ignore:     slices.Clone(c.Ignore),
		IncludeAll: includeAll,
	}
}

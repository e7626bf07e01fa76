// Package config provides configuration types and defaults for monkeyreg.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"time"

	"github.com/zjrosen/monkeyreg/internal/log"
)

// Config holds all configuration options for monkeyreg.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Theme   ThemeConfig   `mapstructure:"theme"`
}

// APIConfig locates the registry service.
type APIConfig struct {
	// BaseURL is the scheme and host the /api/monkeys routes hang off.
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"`
	ShowIDs       bool          `mapstructure:"show_ids"`
	Mouse         bool          `mapstructure:"mouse"`
}

// CacheConfig controls the read-through cache in front of single-record
// fetches. Listings are never cached.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// TracingConfig holds client-side tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/monkeyreg/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// ThemeConfig holds color overrides.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Supports both nested YAML
	// and quoted dot notation:
	//   colors:
	//     status:
	//       error: "#FF0000"
	//     "text.muted": "#777777"
	Colors map[string]any `mapstructure:"colors"`
}

// Theme color tokens.
const (
	ColorAccent        = "accent"
	ColorTextMuted     = "text.muted"
	ColorStatusError   = "status.error"
	ColorStatusSuccess = "status.success"
)

// ColorTokens lists every token a theme may override.
var ColorTokens = []string{ColorAccent, ColorTextMuted, ColorStatusError, ColorStatusSuccess}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// Color returns the override for token, or "".
func (t ThemeConfig) Color(token string) string {
	return t.FlattenedColors()[token]
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// yaml.v2-style maps can still reach us through viper.
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				converted[fmt.Sprint(mk)] = mv
			}
			flattenColors(key, converted, result)
		}
	}
}

// DefaultTracesFilePath returns ~/.config/monkeyreg/traces/traces.jsonl, or
// "" when the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "monkeyreg", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		UI: UIConfig{
			ToastDuration: 3 * time.Second,
			ShowIDs:       true,
			Mouse:         true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Second,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate runs every section validator and returns the first failure.
func (c Config) Validate() error {
	for _, err := range []error{
		ValidateAPI(c.API),
		ValidateUI(c.UI),
		ValidateCache(c.Cache),
		ValidateTracing(c.Tracing),
		ValidateTheme(c.Theme),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateAPI checks the registry location.
func ValidateAPI(api APIConfig) error {
	if api.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(api.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", api.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url must include a host, got %q", api.BaseURL)
	}
	if api.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %v", api.Timeout)
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	if ui.ToastDuration <= 0 {
		return fmt.Errorf("ui.toast_duration must be positive, got %v", ui.ToastDuration)
	}
	return nil
}

// ValidateCache checks cache options. The ttl only matters when enabled.
func ValidateCache(cache CacheConfig) error {
	if cache.Enabled && cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled, got %v", cache.TTL)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Path requirements only apply when tracing is on.
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateTheme checks the mode and every color override.
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\" or empty, got %q", theme.Mode)
	}

	colors := theme.FlattenedColors()
	tokens := make([]string, 0, len(colors))
	for token := range colors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if !slices.Contains(ColorTokens, token) {
			return fmt.Errorf("theme.colors.%s: unknown color token", token)
		}
		if !hexColor.MatchString(colors[token]) {
			return fmt.Errorf("theme.colors.%s must be a hex color like #FF0000, got %q", token, colors[token])
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Monkey Registry Configuration

# Registry service
api:
  base_url: http://localhost:8000   # Scheme and host serving /api/monkeys
  timeout: 10s                      # Per-request timeout

# UI settings
ui:
  toast_duration: 3s   # How long notifications stay on screen
  show_ids: true       # Show the short id column (toggle with 'i')
  mouse: true          # Click rows to select, click again for details

# Read-through cache for single-record fetches (details view)
cache:
  enabled: true
  ttl: 30s

# Theme overrides
# theme:
#   mode: dark              # light, dark, or empty for terminal detection
#   colors:
#     accent: "#54A0FF"
#     text.muted: "#696969"
#     status.error: "#FF8787"
#     status.success: "#73F59F"

# Client-side tracing of registry calls
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/monkeyreg/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

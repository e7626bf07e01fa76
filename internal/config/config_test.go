package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	require.Equal(t, 3*time.Second, cfg.UI.ToastDuration)
	require.True(t, cfg.Cache.Enabled)
}

func TestValidateAPI(t *testing.T) {
	tests := []struct {
		name    string
		api     APIConfig
		wantErr string
	}{
		{"valid", APIConfig{BaseURL: "https://registry.example.com", Timeout: time.Second}, ""},
		{"missing url", APIConfig{Timeout: time.Second}, "api.base_url is required"},
		{"bad scheme", APIConfig{BaseURL: "ftp://registry", Timeout: time.Second}, "api.base_url must use http or https"},
		{"no host", APIConfig{BaseURL: "http://", Timeout: time.Second}, "api.base_url must include a host"},
		{"zero timeout", APIConfig{BaseURL: "http://localhost:8000"}, "api.timeout must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPI(tt.api)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateUI(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{ToastDuration: time.Second}))
	require.ErrorContains(t, ValidateUI(UIConfig{}), "ui.toast_duration")
}

func TestValidateCache(t *testing.T) {
	require.NoError(t, ValidateCache(CacheConfig{Enabled: false}), "ttl is ignored when disabled")
	require.NoError(t, ValidateCache(CacheConfig{Enabled: true, TTL: time.Minute}))
	require.ErrorContains(t, ValidateCache(CacheConfig{Enabled: true}), "cache.ttl")
}

func TestValidateTracing(t *testing.T) {
	tests := []struct {
		name    string
		tracing TracingConfig
		wantErr string
	}{
		{"disabled defaults", TracingConfig{Exporter: "file", SampleRate: 1}, ""},
		{"sample rate too high", TracingConfig{SampleRate: 1.5}, "tracing.sample_rate"},
		{"negative sample rate", TracingConfig{SampleRate: -0.1}, "tracing.sample_rate"},
		{"unknown exporter", TracingConfig{Exporter: "jaeger"}, "tracing.exporter"},
		{"file needs path", TracingConfig{Enabled: true, Exporter: "file"}, "tracing.file_path is required"},
		{"otlp needs endpoint", TracingConfig{Enabled: true, Exporter: "otlp"}, "tracing.otlp_endpoint is required"},
		{"stdout", TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTracing(tt.tracing)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateTheme(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{}))
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: "light", Colors: map[string]any{
		"accent": "#fff",
		"status": map[string]any{"error": "#FF0000"},
	}}))

	require.ErrorContains(t, ValidateTheme(ThemeConfig{Mode: "sepia"}), "theme.mode")
	require.ErrorContains(t,
		ValidateTheme(ThemeConfig{Colors: map[string]any{"banana": "#FFFF00"}}),
		"theme.colors.banana: unknown color token")
	require.ErrorContains(t,
		ValidateTheme(ThemeConfig{Colors: map[string]any{"text.muted": "grey"}}),
		"theme.colors.text.muted must be a hex color")
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"text":         map[string]any{"muted": "#777777"},
		"status.error": "#FF0000",
		"status": map[any]any{
			"success": "#00FF00",
		},
	}}

	require.Equal(t, map[string]string{
		"text.muted":     "#777777",
		"status.error":   "#FF0000",
		"status.success": "#00FF00",
	}, theme.FlattenedColors())
	require.Equal(t, "#777777", theme.Color(ColorTextMuted))
	require.Empty(t, theme.Color(ColorAccent))
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(configPath))

	cfg := loadFile(t, configPath)
	require.Equal(t, Defaults(), cfg)
}

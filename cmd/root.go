// Package cmd holds the monkeyreg command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/monkeyreg/internal/app"
	"github.com/zjrosen/monkeyreg/internal/cachemanager"
	"github.com/zjrosen/monkeyreg/internal/config"
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
	"github.com/zjrosen/monkeyreg/internal/registry"
	"github.com/zjrosen/monkeyreg/internal/tracing"
	"github.com/zjrosen/monkeyreg/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const (
	envPrefix       = "MONKEYREG"
	localConfigPath = ".monkeyreg/config.yaml"
)

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "monkeyreg",
	Short:   "A terminal client for the monkey registry",
	Long:    `A terminal user interface for browsing, filtering, adding, editing and deleting records in a monkey registry service.`,
	Version: version,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return cfg.Validate()
	},
	RunE: runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .monkeyreg/config.yaml, then ~/.config/monkeyreg/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also MONKEYREG_DEBUG=1)")
	rootCmd.PersistentFlags().String("base-url", "",
		"registry base url (overrides api.base_url)")

	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
}

func initConfig() {
	var err error
	cfg, err = loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
}

// setDefaults registers every key so environment overrides apply to keys
// that do not appear in the file.
func setDefaults(v *viper.Viper) {
	defaults := config.Defaults()
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("ui.toast_duration", defaults.UI.ToastDuration)
	v.SetDefault("ui.show_ids", defaults.UI.ShowIDs)
	v.SetDefault("ui.mouse", defaults.UI.Mouse)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
	v.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	v.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	v.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("theme.mode", defaults.Theme.Mode)
}

// loadConfig reads configuration into v and decodes it. Lookup order:
// explicit path, .monkeyreg/config.yaml, ~/.config/monkeyreg/config.yaml.
// When none exists a commented default is written to .monkeyreg/config.yaml.
func loadConfig(v *viper.Viper, path string) (config.Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(localConfigPath); err == nil {
		v.SetConfigFile(localConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "monkeyreg"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	var loadErr error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				v.SetConfigFile(localConfigPath)
				_ = v.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		default:
			loadErr = fmt.Errorf("reading config: %w", err)
		}
	}

	out := config.Defaults()
	if err := v.Unmarshal(&out); err != nil {
		return config.Defaults(), fmt.Errorf("decoding config: %w", err)
	}
	log.Debug(log.CatConfig, "config loaded", "file", v.ConfigFileUsed(), "base_url", out.API.BaseURL)
	return out, loadErr
}

// initLogging turns on the debug log when requested by flag or environment.
// The returned cleanup is never nil.
func initLogging(name string) (func(), error) {
	if !debugFlag && os.Getenv(envPrefix+"_DEBUG") == "" {
		return func() {}, nil
	}
	cleanup, err := log.Init(log.DefaultPath())
	if err != nil {
		return func() {}, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "monkeyreg starting", "command", name, "version", version, "config", viper.ConfigFileUsed())
	return cleanup, nil
}

// applyTheme pushes configured colors into the shared styles.
func applyTheme(theme config.ThemeConfig) {
	switch theme.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
	styles.ApplyTheme(
		theme.Color(config.ColorAccent),
		theme.Color(config.ColorTextMuted),
		theme.Color(config.ColorStatusError),
		theme.Color(config.ColorStatusSuccess),
	)
}

// newClient builds the registry client stack for c: traced HTTP transport
// wrapped in the read-through cache. The shutdown func flushes spans.
func newClient(c config.Config) (*registry.CachingClient, func(context.Context) error, error) {
	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      c.Tracing.Enabled,
		Exporter:     c.Tracing.Exporter,
		FilePath:     tracesPath(c.Tracing.FilePath),
		OTLPEndpoint: c.Tracing.OTLPEndpoint,
		SampleRate:   c.Tracing.SampleRate,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing tracing: %w", err)
	}

	httpClient, err := registry.NewHTTPClient(c.API.BaseURL,
		registry.WithTimeout(c.API.Timeout),
		registry.WithTracer(provider.Tracer()),
	)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, nil, err
	}

	cache := cachemanager.NewInMemoryCacheManager[string, monkey.Monkey](
		"monkeys", c.Cache.TTL, cachemanager.DefaultCleanupInterval)
	return registry.NewCachingClient(httpClient, cache, c.Cache.TTL, c.Cache.Enabled), provider.Shutdown, nil
}

// tracesPath expands a leading ~ and falls back to the default location.
func tracesPath(p string) string {
	if p == "" {
		return config.DefaultTracesFilePath()
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return p
}

func runApp(_ *cobra.Command, _ []string) error {
	cleanup, err := initLogging("tui")
	if err != nil {
		return err
	}
	defer cleanup()

	applyTheme(cfg.Theme)
	zone.NewGlobal()

	client, shutdown, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	model := app.New(client, app.Options{
		Endpoint:      cfg.API.BaseURL,
		ToastDuration: cfg.UI.ToastDuration,
		ShowIDs:       cfg.UI.ShowIDs,
		Mouse:         cfg.UI.Mouse,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Package config loads cronpick settings from an optional YAML file and
// CRONPICK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/cronpick/internal/cronexpr"
	"github.com/alexanderramin/cronpick/internal/editor"
	"github.com/alexanderramin/cronpick/internal/publish"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CRONPICK_DB_PATH.
const EnvPrefix = "CRONPICK"

// Config holds all cronpick settings.
type Config struct {
	DBPath     string                           `mapstructure:"db_path"`
	LogChanges bool                             `mapstructure:"log_changes"`
	Initial    string                           `mapstructure:"initial"`
	Post       PostConfig                       `mapstructure:"post"`
	Sections   map[string]editor.SectionDisplay `mapstructure:"sections"`
	Presets    []editor.Preset                  `mapstructure:"presets"`
}

// PostConfig configures change publishing. An empty URL disables it.
type PostConfig struct {
	URL        string `mapstructure:"url"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// DefaultDir returns ~/.cronpick.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".cronpick"), nil
}

// Load reads configuration from path, or from config.yaml in DefaultDir when
// path is empty. A missing default file is not an error; a missing explicit
// file is.
func Load(path string) (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dir string) {
	pub := publish.DefaultConfig()
	v.SetDefault("db_path", filepath.Join(dir, "cronpick.db"))
	v.SetDefault("log_changes", false)
	v.SetDefault("initial", editor.DefaultInitial)
	v.SetDefault("post.url", "")
	v.SetDefault("post.timeout_ms", pub.TimeoutMs)
	v.SetDefault("post.max_retries", pub.MaxRetries)
}

// Validate checks values that would otherwise only fail when the editor or
// publisher is constructed.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config: db_path must not be empty")
	}
	if c.Post.TimeoutMs < 0 {
		return fmt.Errorf("config: post.timeout_ms must not be negative")
	}
	if c.Post.MaxRetries < 0 {
		return fmt.Errorf("config: post.max_retries must not be negative")
	}
	if _, err := c.EditorOptions(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EditorOptions converts the configured initial value, section overrides,
// and presets into editor options. Callbacks are left for the caller.
func (c *Config) EditorOptions() (editor.Options, error) {
	opts := editor.Options{
		Initial: c.Initial,
		Presets: append([]editor.Preset(nil), c.Presets...),
	}
	if len(c.Sections) > 0 {
		opts.Sections = make(map[cronexpr.Section]editor.SectionDisplay, len(c.Sections))
		for name, display := range c.Sections {
			section, err := parseSectionKey(name)
			if err != nil {
				return editor.Options{}, fmt.Errorf("sections.%s: %w", name, err)
			}
			opts.Sections[section] = display
		}
	}
	if err := opts.Validate(); err != nil {
		return editor.Options{}, err
	}
	return opts, nil
}

// PublishConfig returns the publisher settings.
func (c *Config) PublishConfig() publish.Config {
	return publish.Config{
		URL:        c.Post.URL,
		TimeoutMs:  c.Post.TimeoutMs,
		MaxRetries: c.Post.MaxRetries,
	}
}

// parseSectionKey matches section names case-insensitively; viper lowercases
// every map key it reads.
func parseSectionKey(key string) (cronexpr.Section, error) {
	for _, s := range cronexpr.Sections {
		if strings.EqualFold(s.String(), key) {
			return s, nil
		}
	}
	return cronexpr.ParseSection(key)
}

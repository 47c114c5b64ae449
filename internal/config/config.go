package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the dashboard build
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	Environment string `env:"ENVIRONMENT,default=development"`

	// Output sink
	DeploymentMode string `env:"DEPLOYMENT_MODE,default=local"`
	OutputDir      string `env:"OUTPUT_DIR,default=./dist"`
	GCSBucket      string `env:"GCS_BUCKET"`

	// Rendering
	ThemeName      string        `env:"THEME_NAME,default=marketIntelligence"`
	EChartsCDN     string        `env:"ECHARTS_CDN,default=https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"`
	ResizeDebounce time.Duration `env:"RESIZE_DEBOUNCE,default=150ms"`
	ViewportWidth  int           `env:"VIEWPORT_WIDTH,default=1280"`
	ViewportHeight int           `env:"VIEWPORT_HEIGHT,default=800"`

	// Page
	MarkdownEngine   string   `env:"MARKDOWN_ENGINE,default=goldmark"`
	DisabledSections []string `env:"DISABLED_SECTIONS"`
}

// Load reads configuration from the process environment
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, nil)
}

// LoadFrom reads configuration from a fixed map instead of the environment
func LoadFrom(ctx context.Context, env map[string]string) (*Config, error) {
	return load(ctx, envconfig.MapLookuper(env))
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	var err error
	if lookuper == nil {
		err = envconfig.Process(ctx, &cfg)
	} else {
		err = envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express as tags
func (c *Config) Validate() error {
	switch c.DeploymentMode {
	case "local":
	case "gcs":
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when DEPLOYMENT_MODE=gcs")
		}
	default:
		return fmt.Errorf("unsupported DEPLOYMENT_MODE %q", c.DeploymentMode)
	}
	switch strings.ToLower(c.MarkdownEngine) {
	case "goldmark", "gomarkdown":
	default:
		return fmt.Errorf("unsupported MARKDOWN_ENGINE %q", c.MarkdownEngine)
	}
	if c.ResizeDebounce <= 0 {
		return fmt.Errorf("RESIZE_DEBOUNCE must be positive, got %s", c.ResizeDebounce)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	return nil
}

// SectionDisabled reports whether a page section was switched off
func (c *Config) SectionDisabled(section string) bool {
	for _, s := range c.DisabledSections {
		if strings.EqualFold(strings.TrimSpace(s), section) {
			return true
		}
	}
	return false
}

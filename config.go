package glyphfield

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Text    TextConfig    `yaml:"text"`
	Density DensityConfig `yaml:"density"`
	Trail   TrailConfig   `yaml:"trail"`
	Effects EffectsConfig `yaml:"effects"`
	Debug   DebugConfig   `yaml:"debug"`
}

// WindowConfig holds window settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// TextConfig holds point cloud text settings.
type TextConfig struct {
	Placeholder string  `yaml:"placeholder"`
	Initial     string  `yaml:"initial"`
	MaxLength   int     `yaml:"max_length"`
	FontSize    float64 `yaml:"font_size"`
	FontPath    string  `yaml:"font_path"`
}

// DensityConfig holds the starting sample density.
type DensityConfig struct {
	Initial float64 `yaml:"initial"`
}

// TrailConfig holds cursor trail settings.
type TrailConfig struct {
	LifetimeMs float64 `yaml:"lifetime_ms"`
	Diameter   float64 `yaml:"diameter"`
}

// EffectsConfig holds effect selection settings.
type EffectsConfig struct {
	Initial       int       `yaml:"initial"`
	Noise         NoiseKind `yaml:"noise"`
	NoiseSeed     int64     `yaml:"noise_seed"`
	BannerSeconds float64   `yaml:"banner_seconds"`
}

// DebugConfig holds diagnostics settings.
type DebugConfig struct {
	Enabled       bool   `yaml:"enabled"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("glyphfield: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// LoadConfig loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.Merge(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays YAML data onto c. Only fields present in data change.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate reports every invalid setting, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Text.MaxLength <= 0 {
		errs = append(errs, fmt.Errorf("text.max_length must be positive, got %d", c.Text.MaxLength))
	}
	if c.Text.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("text.font_size must be positive, got %g", c.Text.FontSize))
	}
	if c.Density.Initial <= 0 {
		errs = append(errs, fmt.Errorf("density.initial must be positive, got %g", c.Density.Initial))
	}
	if c.Trail.LifetimeMs <= 0 || c.Trail.Diameter <= 0 {
		errs = append(errs, errors.New("trail lifetime_ms and diameter must be positive"))
	}
	switch c.Effects.Noise {
	case NoisePerlin, NoiseSimplex:
	default:
		errs = append(errs, fmt.Errorf("effects.noise: unknown kind %q", c.Effects.Noise))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SessionConfig derives the session settings. The noise source is built
// from the effects section.
func (c *Config) SessionConfig() (SessionConfig, error) {
	noise, err := NewNoise(c.Effects.Noise, c.Effects.NoiseSeed)
	if err != nil {
		return SessionConfig{}, err
	}
	return SessionConfig{
		Placeholder:   c.Text.Placeholder,
		InitialText:   c.Text.Initial,
		MaxTextLength: c.Text.MaxLength,
		FontSize:      c.Text.FontSize,
		Density:       c.Density.Initial,
		EffectIndex:   c.Effects.Initial,
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		Noise:         noise,
		Trail:         NewTrail(c.Trail.LifetimeMs, c.Trail.Diameter),
	}, nil
}

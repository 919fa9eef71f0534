package idmanager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for settings a Manager cannot use.
var ErrInvalidConfig = errors.New("idmanager: invalid config")

// Config is a serialisable representation of Manager settings. It can be
// populated from JSON or YAML; empty separator and marker fall back to the
// package defaults.
type Config struct {
	Prefix      string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Separator   string `json:"separator,omitempty" yaml:"separator,omitempty"`
	ScopeMarker string `json:"scopeMarker,omitempty" yaml:"scopeMarker,omitempty"`
}

// DefaultConfig returns a Config with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Separator:   DefaultSeparator,
		ScopeMarker: DefaultScopeMarker,
	}
}

func (c *Config) init() {
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.ScopeMarker == "" {
		c.ScopeMarker = DefaultScopeMarker
	}
}

// withDefaults returns a copy with empty separator and marker defaulted.
func (c *Config) withDefaults() *Config {
	ret := *c
	ret.init()
	return &ret
}

// Validate returns an error describing invalid settings or nil. Empty
// separator and marker are checked as their defaults; c is not modified.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	c = c.withDefaults()
	if strings.Contains(c.Separator, c.ScopeMarker) {
		return fmt.Errorf("%w: scopeMarker %q overlaps separator %q", ErrInvalidConfig, c.ScopeMarker, c.Separator)
	}
	if strings.Contains(c.Prefix, c.ScopeMarker) || strings.Contains(c.Suffix, c.ScopeMarker) {
		return fmt.Errorf("%w: prefix and suffix must not contain scopeMarker %q", ErrInvalidConfig, c.ScopeMarker)
	}
	return nil
}

// Options converts the config into Manager options.
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	c = c.withDefaults()
	return []Option{
		WithPrefix(c.Prefix),
		WithSuffix(c.Suffix),
		WithSeparator(c.Separator),
		WithScopeMarker(c.ScopeMarker),
	}
}

// NewFromConfig validates cfg and creates a Manager from it. A nil cfg yields
// the defaults.
func NewFromConfig(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.Options()...), nil
}

// DecodeConfig decodes a YAML (or JSON) document into a validated Config.
func DecodeConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a config document from any afs supported URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	return DecodeConfig(data)
}

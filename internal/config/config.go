package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkshield/phishguard/internal/domain/rules"
)

const (
	DefaultConfigPath = "phishguard.yml"
	DefaultListenAddr = ":8080"

	envListenAddr = "PHISHGUARD_LISTEN_ADDR"
	envModelPath  = "PHISHGUARD_MODEL"
)

// Config contains the fully merged settings for the analyzer.
type Config struct {
	// ListenAddr is the HTTP bind address for the serve command.
	ListenAddr string

	// ModelPath points at a JSON model artifact on disk. Empty means the
	// artifact embedded in the binary.
	ModelPath string

	// Rules holds the rule-battery constants. Loaded once; immutable at runtime.
	Rules RulesConfig
}

// RulesConfig mirrors rules.Context in configuration form.
type RulesConfig struct {
	Keywords       []string `yaml:"keywords"`
	SuspiciousTLDs []string `yaml:"suspicious_tlds"`
	Brands         []string `yaml:"brands"`
	MaxSubdomains  int      `yaml:"max_subdomains"`
	MaxURLLength   int      `yaml:"max_url_length"`
	MaxPathDepth   int      `yaml:"max_path_depth"`
}

// fileConfig is the on-disk YAML shape. Everything is optional; absent keys
// keep their defaults.
type fileConfig struct {
	ListenAddr string       `yaml:"listen_addr"`
	ModelPath  string       `yaml:"model_path"`
	Rules      *RulesConfig `yaml:"rules"`
}

// Default returns the baseline configuration when no overrides are provided.
func Default() Config {
	ctx := rules.DefaultContext()
	return Config{
		ListenAddr: DefaultListenAddr,
		Rules: RulesConfig{
			Keywords:       ctx.Keywords,
			SuspiciousTLDs: ctx.SuspiciousTLDs,
			Brands:         ctx.Brands,
			MaxSubdomains:  ctx.MaxSubdomains,
			MaxURLLength:   ctx.MaxURLLength,
			MaxPathDepth:   ctx.MaxPathDepth,
		},
	}
}

// Loader merges configuration coming from the config file and environment
// variables, in that order.
type Loader struct {
	ConfigPath string
}

// Load resolves the final configuration.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if data, err := os.ReadFile(path); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.apply(fc)
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	} else if l.ConfigPath != "" {
		// An explicitly requested config file must exist
		return cfg, fmt.Errorf("config file %s not found", l.ConfigPath)
	}

	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv(envModelPath); v != "" {
		cfg.ModelPath = v
	}

	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.ListenAddr != "" {
		c.ListenAddr = fc.ListenAddr
	}
	if fc.ModelPath != "" {
		c.ModelPath = fc.ModelPath
	}
	if fc.Rules == nil {
		return
	}
	if len(fc.Rules.Keywords) > 0 {
		c.Rules.Keywords = fc.Rules.Keywords
	}
	if len(fc.Rules.SuspiciousTLDs) > 0 {
		c.Rules.SuspiciousTLDs = fc.Rules.SuspiciousTLDs
	}
	if len(fc.Rules.Brands) > 0 {
		c.Rules.Brands = fc.Rules.Brands
	}
	if fc.Rules.MaxSubdomains > 0 {
		c.Rules.MaxSubdomains = fc.Rules.MaxSubdomains
	}
	if fc.Rules.MaxURLLength > 0 {
		c.Rules.MaxURLLength = fc.Rules.MaxURLLength
	}
	if fc.Rules.MaxPathDepth > 0 {
		c.Rules.MaxPathDepth = fc.Rules.MaxPathDepth
	}
}

// RuleContext converts the merged settings into the rule battery's context.
func (c Config) RuleContext() *rules.Context {
	return &rules.Context{
		Keywords:       c.Rules.Keywords,
		SuspiciousTLDs: c.Rules.SuspiciousTLDs,
		Brands:         c.Rules.Brands,
		MaxSubdomains:  c.Rules.MaxSubdomains,
		MaxURLLength:   c.Rules.MaxURLLength,
		MaxPathDepth:   c.Rules.MaxPathDepth,
	}
}

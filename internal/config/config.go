// Package config loads rule sets for the riichi tools from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/riichi/mahjong"
)

const (
	DefaultAddress  = "localhost"
	DefaultPort     = 8080
	DefaultLogLevel = "info"
)

// Config is the complete file layout. Every block is optional.
type Config struct {
	Rules   *RulesConfig   `hcl:"rules,block"`
	Logging *LoggingConfig `hcl:"logging,block"`
	Server  *ServerConfig  `hcl:"server,block"`
}

// RulesConfig selects which yaku are scored and how remarks are applied.
type RulesConfig struct {
	EnabledYaku    []string `hcl:"enabled_yaku,optional"`
	EnforceRemarks bool     `hcl:"enforce_remarks,optional"`
}

// LoggingConfig holds the log level name.
type LoggingConfig struct {
	Level string `hcl:"level,optional"`
}

// ServerConfig is where the websocket service listens.
type ServerConfig struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

// Default returns the configuration used when no file is present: every yaku
// enabled, remarks left to the rules.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Validate checks the log level, the port and every enabled yaku name.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if _, err := c.Catalogue(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured level.
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return level, nil
}

// Catalogue returns the default catalogue narrowed to enabled_yaku, in
// registration order. An empty list keeps every yaku.
func (c *Config) Catalogue() (*mahjong.Catalogue, error) {
	if len(c.Rules.EnabledYaku) == 0 {
		return mahjong.DefaultCatalogue(), nil
	}
	cat, err := mahjong.DefaultCatalogue().Filter(c.Rules.EnabledYaku...)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return cat, nil
}

// NewEvaluator builds an evaluator for this rule set.
func (c *Config) NewEvaluator(logger *log.Logger) (*mahjong.Evaluator, error) {
	cat, err := c.Catalogue()
	if err != nil {
		return nil, err
	}
	return mahjong.NewEvaluator(
		mahjong.WithCatalogue(cat),
		mahjong.WithLogger(logger),
		mahjong.WithRemarkEnforcement(c.Rules.EnforceRemarks),
	), nil
}

// ServerAddress returns host:port for the websocket service.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

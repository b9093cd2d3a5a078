// ============================================================================
// lox - scripting language toolchain
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML, with defaults
//              and environment overrides
// Author:      Mike Stoffels
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox/scanner"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Scanner ScannerConfig `toml:"scanner" yaml:"scanner"`
	REPL    REPLConfig    `toml:"repl" yaml:"repl"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// ScannerConfig holds scanner settings
type ScannerConfig struct {
	// Unterminated is "error" or "eof"
	Unterminated string `toml:"unterminated" yaml:"unterminated"`
}

// REPLConfig holds interactive session settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Echo        bool   `toml:"echo" yaml:"echo"`
	ExitCommand string `toml:"exit_command" yaml:"exit_command"`
	TUI         bool   `toml:"tui" yaml:"tui"`
}

// WatchConfig holds settings for re-running scripts on change
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Duration wraps time.Duration for text-based config files
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		General: GeneralConfig{Color: true},
		Scanner: ScannerConfig{Unterminated: "error"},
		REPL: REPLConfig{
			Prompt:      "> ",
			Echo:        true,
			ExitCommand: "exit",
		},
		Watch: WatchConfig{Debounce: Duration{200 * time.Millisecond}},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of the
// defaults and applies environment overrides
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loxerror.Wrap(err, "read config").
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, loxerror.Newf("unsupported config format %q", ext).
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, loxerror.Wrap(err, "parse config").
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFromEnv loads the file named by LOX_CONFIG, or the first existing
// default location. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv("LOX_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{"./lox.toml", "./lox.yaml", "./lox.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lox", "config.toml"))
	}
	return paths
}

// Validate checks values that cannot be expressed by the file format
func (c *Config) Validate() error {
	var problems []string

	if _, err := loxlog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	if _, err := loxlog.ParseFormat(c.Log.Format); err != nil {
		problems = append(problems, "log.format: "+err.Error())
	}
	if _, err := scanner.ParseUnterminated(c.Scanner.Unterminated); err != nil {
		problems = append(problems, "scanner.unterminated: "+err.Error())
	}
	if c.Watch.Debounce.Duration <= 0 {
		problems = append(problems, fmt.Sprintf("watch.debounce: must be positive, got %s", c.Watch.Debounce.Duration))
	}

	if len(problems) > 0 {
		return loxerror.New("invalid configuration: "+strings.Join(problems, "; ")).
			WithCode(loxerror.CodeConfigError).
			WithOperation("config.validate")
	}
	return nil
}

// Unterminated returns the scanner policy. Call Validate first; invalid
// values fall back to the error policy.
func (c *Config) Unterminated() scanner.Unterminated {
	policy, _ := scanner.ParseUnterminated(c.Scanner.Unterminated)
	return policy
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = def.REPL.Prompt
	}
	if c.REPL.ExitCommand == "" {
		c.REPL.ExitCommand = def.REPL.ExitCommand
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Scanner.Unterminated == "" {
		c.Scanner.Unterminated = def.Scanner.Unterminated
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce = def.Watch.Debounce
	}
}

// applyEnv applies LOX_* overrides; NO_COLOR disables color
func (c *Config) applyEnv() {
	if v := os.Getenv("LOX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOX_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("LOX_PROMPT"); v != "" {
		c.REPL.Prompt = v
	}
	if v := os.Getenv("LOX_UNTERMINATED"); v != "" {
		c.Scanner.Unterminated = v
	}
	if v := os.Getenv("LOX_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.General.Color = b
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.General.Color = false
	}
}

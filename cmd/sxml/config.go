package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

// Config holds the settings of the sxml command. Flags that are set explicitly override the config file.
type Config struct {
	Format       string `toml:"format" validate:"oneof=pretty json yaml msgpack"`
	Chunk        int    `toml:"chunk" validate:"gte=0"`
	Tokens       int    `toml:"tokens" validate:"gte=1"`
	MaxBuf       int    `toml:"max_buf" validate:"gte=0"`
	MatchEndTags bool   `toml:"match_end_tags"`
	Jobs         int    `toml:"jobs" validate:"gte=1"`
	Color        string `toml:"color" validate:"oneof=auto on off"`
	LogLevel     string `toml:"log_level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the settings used when there is no config file.
func DefaultConfig() Config {
	return Config{
		Format:   "pretty",
		Tokens:   64,
		Jobs:     4,
		Color:    "auto",
		LogLevel: "warn",
	}
}

// LoadConfig reads a TOML config file on top of the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

var validate = validator.New()

// Validate checks that all settings are within range.
func (cfg Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyFlags overrides the settings whose flags were set on the command line. Flags a command does not define are skipped.
func (cfg *Config) applyFlags(flags *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if f := flags.Lookup(name); err == nil && f != nil && f.Changed {
			err = apply()
		}
	}
	set("format", func() (err error) { cfg.Format, err = flags.GetString("format"); return })
	set("chunk", func() (err error) { cfg.Chunk, err = flags.GetInt("chunk"); return })
	set("tokens", func() (err error) { cfg.Tokens, err = flags.GetInt("tokens"); return })
	set("max-buf", func() (err error) { cfg.MaxBuf, err = flags.GetInt("max-buf"); return })
	set("match-end-tags", func() (err error) { cfg.MatchEndTags, err = flags.GetBool("match-end-tags"); return })
	set("jobs", func() (err error) { cfg.Jobs, err = flags.GetInt("jobs"); return })
	set("color", func() (err error) { cfg.Color, err = flags.GetString("color"); return })
	set("log-level", func() (err error) { cfg.LogLevel, err = flags.GetString("log-level"); return })
	return err
}

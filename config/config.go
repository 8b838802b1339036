/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads user-defined error domains and aliases from a file
// and turns them into a registry.
//
// Example (YAML):
//
//	logging:
//	  level: info
//	  format: text
//	builtins: true
//	domains:
//	  - id: storage
//	    unknown: Unknown
//	    codes:
//	      - {name: Unknown, value: 0}
//	      - {name: NotFound, value: 404}
//	    classes:
//	      - {label: client, lo: 400, hi: 499}
//	aliases:
//	  - {from: NSURLErrorDomain, to: network}
//	  - {from: legacy.net, to: network, prefix: true}
//
// Lists are used instead of maps for names because viper folds map keys to
// lowercase. Every scalar can be overridden from the environment with the
// EBRIDGE_ prefix, e.g. EBRIDGE_LOGGING_LEVEL=debug.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"dirpx.dev/ebridge"
	"dirpx.dev/ebridge/class"
	"dirpx.dev/ebridge/code"
	"dirpx.dev/ebridge/domains/appcode"
	"dirpx.dev/ebridge/domains/netcode"
	"dirpx.dev/ebridge/registry"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "EBRIDGE"

// Defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

var (
	// ErrNotFound is returned when an explicit config path does not exist.
	ErrNotFound = errors.New("config: file not found")
	// ErrInvalid is returned when the loaded configuration fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the root configuration.
type Config struct {
	// Logging configures the CLI logger.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	// Builtins registers ebridge.generic, network and application ahead of
	// user domains.
	Builtins bool `mapstructure:"builtins" yaml:"builtins"`
	// Domains are user-defined error domains, probed in order after the
	// built-in ones.
	Domains []DomainConfig `mapstructure:"domains" yaml:"domains"`
	// Aliases route foreign domain strings to registered domains.
	Aliases []AliasConfig `mapstructure:"aliases" yaml:"aliases"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "text" (console) or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// DomainConfig declares one error domain with int codes.
type DomainConfig struct {
	ID string `mapstructure:"id" yaml:"id"`
	// Policy is "strict", "collapse" or "preserve". Empty picks collapse
	// when Unknown is set and strict otherwise.
	Policy string `mapstructure:"policy" yaml:"policy"`
	// Unknown names the declared code undeclared codes collapse into.
	Unknown string        `mapstructure:"unknown" yaml:"unknown"`
	Codes   []CodeConfig  `mapstructure:"codes" yaml:"codes"`
	Classes []ClassConfig `mapstructure:"classes" yaml:"classes"`
}

// CodeConfig is one named code.
type CodeConfig struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Value int    `mapstructure:"value" yaml:"value"`
}

// ClassConfig is one closed code range.
type ClassConfig struct {
	Label string `mapstructure:"label" yaml:"label"`
	Lo    int    `mapstructure:"lo" yaml:"lo"`
	Hi    int    `mapstructure:"hi" yaml:"hi"`
}

// AliasConfig routes From to the registered domain To. With Prefix set,
// From is a dot-separated prefix that may contain "*" segments.
type AliasConfig struct {
	From   string `mapstructure:"from" yaml:"from"`
	To     string `mapstructure:"to" yaml:"to"`
	Prefix bool   `mapstructure:"prefix" yaml:"prefix"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging:  LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Builtins: true,
	}
}

// Load reads the configuration at path. An empty path loads defaults plus
// environment overrides. The format follows the file extension (yaml,
// toml or json).
func Load(path string) (*Config, error) {
	v := viper.New()
	setupViper(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setupViper(v *viper.Viper) {
	// EBRIDGE_LOGGING_LEVEL=debug overrides logging.level.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("builtins", true)
}

// Validate checks logging settings and that every domain can be built.
// Alias targets are checked when the registry is built.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	for i, d := range c.Domains {
		if _, err := d.Build(); err != nil {
			return fmt.Errorf("%w: domains[%d]: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

// Build turns the declaration into an ebridge domain.
func (d DomainConfig) Build() (*ebridge.Domain[int], error) {
	entries := make([]code.Entry[int], 0, len(d.Codes))
	byName := make(map[string]int, len(d.Codes))
	for _, c := range d.Codes {
		entries = append(entries, code.E(c.Name, c.Value))
		byName[c.Name] = c.Value
	}

	var opts []ebridge.DomainOption
	if len(d.Classes) > 0 {
		ranges := make([]class.Range, 0, len(d.Classes))
		for _, c := range d.Classes {
			ranges = append(ranges, class.R(c.Lo, c.Hi, class.Label(c.Label)))
		}
		opts = append(opts, ebridge.WithRanges(ranges...))
	}
	if d.Unknown != "" {
		v, ok := byName[d.Unknown]
		if !ok {
			return nil, fmt.Errorf("domain %q: %w: %q", d.ID, ebridge.ErrUnknownNotDeclared, d.Unknown)
		}
		opts = append(opts, ebridge.WithUnknown(v))
	}
	if d.Policy != "" {
		p, err := ebridge.ParsePolicy(d.Policy)
		if err != nil {
			return nil, fmt.Errorf("domain %q: %w", d.ID, err)
		}
		opts = append(opts, ebridge.WithPolicy(p))
	}
	return ebridge.NewDomain(d.ID, entries, opts...)
}

// Options translates the configuration into registry options, built-in
// domains first.
func (c *Config) Options() ([]registry.Option, error) {
	var opts []registry.Option
	if c.Builtins {
		opts = append(opts, registry.WithDomains(ebridge.Generic, netcode.Domain, appcode.Domain))
	}
	for i, dc := range c.Domains {
		d, err := dc.Build()
		if err != nil {
			return nil, fmt.Errorf("config: domains[%d]: %w", i, err)
		}
		opts = append(opts, registry.WithDomain(d))
	}
	for _, a := range c.Aliases {
		if a.Prefix {
			opts = append(opts, registry.WithAliasPrefix(a.From, a.To))
		} else {
			opts = append(opts, registry.WithAlias(a.From, a.To))
		}
	}
	return opts, nil
}

// Registry builds the registry described by the configuration. Each
// registered domain is logged at debug level.
func (c *Config) Registry(log zerolog.Logger) (*registry.Registry, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	r, err := registry.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, id := range r.Domains() {
		log.Debug().Str("domain", id.String()).Msg("registered domain")
	}
	if n := len(c.Aliases); n > 0 {
		log.Debug().Int("aliases", n).Msg("registered aliases")
	}
	return r, nil
}

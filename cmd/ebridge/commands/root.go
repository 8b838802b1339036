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

// Package commands implements the ebridge command line tool, which inspects
// the configured error domains and explains how foreign (domain, code)
// pairs resolve.
package commands

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dirpx.dev/ebridge/config"
	"dirpx.dev/ebridge/internal/cli/output"
	"dirpx.dev/ebridge/internal/logger"
	"dirpx.dev/ebridge/registry"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
)

// env is the state shared by subcommands once the root command has
// loaded configuration.
type env struct {
	cfgFile  string
	logLevel string
	format   string

	log     zerolog.Logger
	reg     *registry.Registry
	printer *output.Printer
}

// NewRootCmd builds the command tree. Each call returns an independent
// tree, so tests can run commands in parallel.
func NewRootCmd() *cobra.Command {
	e := &env{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "ebridge",
		Short: "Inspect error domains and resolve foreign error codes",
		Long: `ebridge lists the registered error domains and explains how an untyped
(domain, code) pair reported by a foreign subsystem resolves to a typed error.

Negative codes must follow "--", e.g.:

  ebridge explain network -- -1001

Use "ebridge [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&e.logLevel, "log-level", "", "log level (overrides logging.level)")
	root.PersistentFlags().StringVarP(&e.format, "output", "o", "table", "output format: table, json, yaml")

	root.AddCommand(
		newDomainsCmd(e),
		newTableCmd(e),
		newExplainCmd(e),
		newClassifyCmd(e),
		newVersionCmd(),
	)
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (e *env) setup(cmd *cobra.Command) error {
	format, err := output.ParseFormat(e.format)
	if err != nil {
		return err
	}
	e.printer = output.NewPrinter(cmd.OutOrStdout(), format)

	cfg, err := config.Load(e.cfgFile)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if e.logLevel != "" {
		level = e.logLevel
	}
	e.log, err = logger.New(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	e.log.Debug().Str("config", e.cfgFile).Int("domains", len(cfg.Domains)).Msg("configuration loaded")

	e.reg, err = cfg.Registry(e.log)
	return err
}

// parseCode parses a decimal code argument.
func parseCode(s string) (int, error) {
	c, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: must be a decimal integer", s)
	}
	return c, nil
}

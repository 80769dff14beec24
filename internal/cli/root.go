// SPDX-License-Identifier: MIT

// Package cli implements the cobra command tree of matcalc.
//
// Each subcommand lives in its own file. This file defines the root command,
// the global flags and process exit handling.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixplus/internal/config"
)

// Global flag values, bound to persistent flags on the root command.
var (
	configPath string
	output     string
	precision  int
	verbose    bool
)

// settings is the effective configuration after file, env and flags.
var settings = config.Default()

// stderr receives verbose traces and error reports.
var stderr io.Writer = os.Stderr

// Build information, injected from main.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root command with every subcommand registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matcalc",
		Short: "Dense matrix calculator",
		Long: `matcalc evaluates dense matrix operations on YAML or JSON documents
of the form {rows: [[...], ...]}. Pass "-" to read a matrix from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		PersistentPreRunE: loadSettings,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%w", err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML config file")
	flags.StringVarP(&output, "output", "o", config.DefaultOutput, "Output format: text, json or yaml")
	flags.IntVarP(&precision, "precision", "p", config.DefaultPrecision, "Decimals in output (-1 keeps every digit)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDetCommand())
	rootCmd.AddCommand(NewInverseCommand())
	rootCmd.AddCommand(NewTransposeCommand())
	rootCmd.AddCommand(NewCofactorsCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewSubCommand())
	rootCmd.AddCommand(NewMulCommand())
	rootCmd.AddCommand(NewScaleCommand())
	rootCmd.AddCommand(NewEqualCommand())
	rootCmd.AddCommand(NewIdentityCommand())

	return rootCmd
}

// loadSettings resolves defaults, the config file, MATCALC_* env and explicit flags.
func loadSettings(cmd *cobra.Command, _ []string) error {
	stderr = cmd.ErrOrStderr()

	cfg, err := config.Load(configPath)
	if err != nil {
		return usageErrorf("%w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("precision") {
		cfg.Precision = precision
	}
	if err = cfg.Validate(); err != nil {
		return usageErrorf("%w", err)
	}
	settings = cfg
	VerboseLog("settings: output=%s precision=%d verify=%t", cfg.Output, cfg.Precision, cfg.Verify)

	return nil
}

// exactArgs is cobra.ExactArgs reporting through ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageErrorf("%w", err)
		}
		return nil
	}
}

// Execute runs rootCmd and exits with the code mapped from its error.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(ExitCode(err))
	}
}

func printError(err error) {
	fmt.Fprintf(stderr, "Error: %v\n", err)
}

// VerboseLog prints a "[verbose]" line to stderr when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(stderr, "[verbose] "+format+"\n", args...)
	}
}

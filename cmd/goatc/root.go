// Package main implements the goatc command-line driver: the thin CLI
// wrapper around the ast/bytecode compiler core (spec.md 1 scopes the
// core itself away from any CLI surface). Modeled on k6's
// cmd/k6/cmd/root.go: one root *cobra.Command built in an init-style
// constructor, sub-commands registered onto it, logging configured
// through logrus before any sub-command runs.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/xyproto/env/v2"

	"goatc/internal/config"
)

// version is stamped at build time in real releases; kept as a plain
// constant here since this module has no release pipeline of its own.
const version = "0.1.0"

var (
	log = logrus.New()

	flagVerbose bool
	flagNoColor bool
	flagConfig  string
)

// rootCmd is the base command invoked when goatc runs with no
// sub-command.
var rootCmd = &cobra.Command{
	Use:   "goatc",
	Short: "Compiler front/middle-end for the goat source language",
	Long: `goatc lowers a hand-built or parsed AST into a linked bytecode
image for the goat stack VM, and can disassemble images back to a
readable instruction listing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
		log.SetFormatter(&logrus.TextFormatter{
			DisableColors: flagNoColor,
			FullTimestamp: false,
		})
	},
}

// rootPersistentFlagSet builds the persistent flag set as its own
// *pflag.FlagSet (rather than calling straight into
// rootCmd.PersistentFlags()) so defaults can be seeded from the
// environment first, the way k6's own rootCmdPersistentFlagSet in
// cmd/root.go does for its --log-output/--logformat flags.
func rootPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("goatc", pflag.ContinueOnError)

	flags.BoolVarP(&flagVerbose, "verbose", "v", env.Bool("GOATC_VERBOSE"), "enable debug logging")
	flags.BoolVar(&flagNoColor, "no-color", false, "disable colorized disassembly output")
	flags.StringVarP(&flagConfig, "config", "c", env.Str("GOATC_CONFIG", config.DefaultFileName), "path to .goatc.toml project config")

	return flags
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(rootPersistentFlagSet())

	rootCmd.AddCommand(getBuildCmd())
	rootCmd.AddCommand(getDisasmCmd())
	rootCmd.AddCommand(getVersionCmd())
}

// loadConfig reads the project config for the current invocation,
// applying any GOATC_OUT/GOATC_SIGNATURE environment overrides on top
// (spec.md's DOMAIN STACK wiring for github.com/xyproto/env/v2).
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(flagConfig)
	if err != nil {
		return nil, err
	}

	if out := env.Str("GOATC_OUT", ""); out != "" {
		cfg.Linker.OutputPath = out
	}
	if sig := env.Str("GOATC_SIGNATURE", ""); sig != "" {
		cfg.Linker.Signature = sig
	}

	return cfg, nil
}

// Execute runs the root command. It is the sole entry point main()
// calls; fatal errors are printed and translated into a non-zero exit
// code here, matching GVM's own single-point recover/report boundary
// in its run.go (getDefaultRecoverFuncForVM/RunProgram), just at the
// CLI layer instead of inside the VM.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("goatc: fatal error")
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

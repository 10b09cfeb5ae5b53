// SPDX-License-Identifier: MIT

// Package cli implements the lvcat command-line interface.
//
// # Commands
//
//   - eval: run a diagram file on an input vector, optionally on every save
//   - normal: print or write the normal form of a diagram
//   - check: compare two diagrams up to the interchange law
//   - matrix: print the matrices of linear diagrams
//   - render: write DOT, SVG or PNG drawings
//   - graph: convert between diagram files and open-graph JSON
//   - serve: run the HTTP API
//
// # Configuration
//
// Settings come from .lvcat.yaml (or --config), LVCAT_* environment
// variables and flags, in increasing priority. See internal/config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvcat/internal/config"
)

var (
	version = "dev" // semantic version
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	out     io.Writer
	errOut  io.Writer
	cfgFile string
	verbose bool
}

// Execute runs the lvcat CLI on os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree writing results to out and logs to
// errOut. Each call gets its own viper instance.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:          "lvcat",
		Short:        "lvcat rewrites and evaluates monoidal diagrams",
		Long:         `lvcat builds string diagrams from text or TOML files, brings them to normal form, evaluates them as functions or matrices, and draws them.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("lvcat %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .lvcat.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.Int("workers", 0, "parallel workers for multi-file commands")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("workers", pf.Lookup("workers"))

	root.AddCommand(a.newEvalCmd())
	root.AddCommand(a.newNormalCmd())
	root.AddCommand(a.newCheckCmd())
	root.AddCommand(a.newMatrixCmd())
	root.AddCommand(a.newRenderCmd())
	root.AddCommand(a.newGraphCmd())
	root.AddCommand(a.newServeCmd())

	return root
}

// setup loads the configuration and attaches the logger to the context.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := charmlog.InfoLevel
	if cfg.Verbose {
		level = charmlog.DebugLevel
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(a.errOut, level)
	logger.Debug("config loaded", "file", a.v.ConfigFileUsed(), "workers", cfg.Workers, "cache", cfg.Cache.Backend)
	cmd.SetContext(withLogger(ctx, logger))

	return nil
}

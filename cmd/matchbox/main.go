// Package main provides the matchbox CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matchbox-ml/matchbox/internal/backend/cpu"
	"github.com/matchbox-ml/matchbox/internal/config"
	"github.com/matchbox-ml/matchbox/internal/logger"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd, a := newRootCmd()
	if err := a.execute(rootCmd); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands once flags are parsed.
type app struct {
	cfg *config.Config
	log *logger.Logger
	ctx *tensor.Context
}

// newRootCmd builds the command tree. Until flags are parsed the app logs
// with the default logger.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{log: logger.Default()}

	rootCmd := &cobra.Command{
		Use:   "matchbox",
		Short: "matchbox - tensors that record their computation graph",
		Long: `matchbox builds immutable tensors on a CPU backend. Every operation
records its operands, so the result of a computation is also a graph
that can be printed, exported to YAML and replayed.

Run 'matchbox demo' to print the graph of a small computation.
Run 'matchbox --help' for available commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().Uint64("seed", 0, "random seed (0 = random)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		versionCmd(),
		demoCmd(a),
		graphCmd(a),
		replayCmd(a),
	)

	return rootCmd, a
}

// execute runs rootCmd and logs a failure with the configured logger.
func (a *app) execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		a.log.WithError(err).Error("command failed")
	}
	return err
}

// setup loads configuration, applies flag overrides and creates the logger
// and tensor context.
func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.LoadFromEnv()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Backend.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}

	backend := cpu.New(cfg.CPU())

	a.cfg = cfg
	a.log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format).WithBackend(backend.Name())
	a.ctx = tensor.NewContext(backend)

	a.log.Debug("configuration loaded",
		"config", configPath,
		"seed", cfg.Backend.Seed,
	)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "matchbox %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

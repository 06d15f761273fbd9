// Package commands provides the CLI command implementations.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpuwatch/pkg/config"
	"cpuwatch/pkg/reporting"
	"cpuwatch/pkg/sampling"
	"cpuwatch/pkg/watching"
)

// Cfg is the shared configuration instance.
var Cfg = config.New()

// NewRootCmd creates the root command. Running it with no subcommand
// starts the monitoring loop.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpuwatch",
		Short: "Log and display high CPU usage",
		Long: `cpuwatch periodically measures per-process and total CPU usage,
shows the top consumers, and appends alerts to a log file whenever the
configured thresholds are reached.

Examples:
  cpuwatch -c
  cpuwatch -l /var/log/cpuwatch.log -t 50 -p 25
  cpuwatch snapshot -n 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWatch,
	}

	Cfg.AddFlags(root)
	root.AddCommand(NewSnapshotCmd())

	return root
}

// Execute runs the root command. Fatal errors print one diagnostic
// line to stderr and exit non-zero.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sampler, err := sampling.NewSampler(sampling.NewSystemProvider())
	if err != nil {
		return err
	}

	// SIGINT/SIGTERM cancel the loop; that is the only way out and it
	// exits cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := reporting.NewConsoleSink(os.Stdout, Cfg.CLI, true)
	logFile := reporting.NewFileSink(Cfg.LogFile)

	return watching.New(Cfg, sampler, console, logFile).Run(ctx)
}

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpuwatch/pkg/reporting"
	"cpuwatch/pkg/sampling"
	"cpuwatch/pkg/watching"
)

// NewSnapshotCmd creates the snapshot subcommand.
func NewSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"ss"},
		Short:   "Capture a single CPU usage snapshot",
		Long: `Run one measurement cycle, print the usage table and any threshold
alerts to stdout, and exit. The screen is not cleared. Alerts are still
appended to the log file when one is configured.

Example:
  cpuwatch snapshot -m 2 -n 10
  cpuwatch snapshot -l /var/log/cpuwatch.log`,
		RunE: runSnapshot,
	}

	Cfg.AddFlags(cmd)

	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := Cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	sampler, err := sampling.NewSampler(sampling.NewSystemProvider())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Snapshots always print, regardless of the CLI flag.
	console := reporting.NewConsoleSink(os.Stdout, true, false)
	logFile := reporting.NewFileSink(Cfg.LogFile)

	cfg := *Cfg
	cfg.CLI = true

	return watching.New(&cfg, sampler, console, logFile).RunOnce(ctx)
}

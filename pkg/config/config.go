// Package config provides configuration for a monitoring run.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Config holds all options for one run. It is populated from CLI
// flags, validated once at startup, and never mutated afterwards.
type Config struct {
	// Seconds to wait between measurement cycles.
	TimeBetweenMeasurements int

	// Seconds per sampling window; CPU usage is averaged over it.
	MeasurementTime int

	// System-wide alert threshold in percent, inclusive.
	TotalLogThreshold float64

	// Single-process alert threshold in percent, inclusive.
	ProcessLogThreshold float64

	// Rows shown in the usage table.
	NumberOfProcessesToShow int

	// Write the table and alerts to stdout each cycle.
	CLI bool

	// Path to the append-mode log file; empty disables file logging.
	LogFile string
}

// Default configuration values.
const (
	DefaultTimeBetweenMeasurements = 5
	DefaultMeasurementTime         = 1
	DefaultTotalLogThreshold       = 30.0
	DefaultProcessLogThreshold     = 15.0
	DefaultProcessesToShow         = 5
)

// New creates a Config with default values.
func New() *Config {
	return &Config{
		TimeBetweenMeasurements: DefaultTimeBetweenMeasurements,
		MeasurementTime:         DefaultMeasurementTime,
		TotalLogThreshold:       DefaultTotalLogThreshold,
		ProcessLogThreshold:     DefaultProcessLogThreshold,
		NumberOfProcessesToShow: DefaultProcessesToShow,
	}
}

// AddFlags binds all configuration flags to the command.
func (c *Config) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVarP(&c.TimeBetweenMeasurements, "time-between-measurements", "b", c.TimeBetweenMeasurements, "Seconds to wait between measurements")
	flags.IntVarP(&c.MeasurementTime, "measurement-time", "m", c.MeasurementTime, "Seconds to measure for (CPU usage is an average over this time)")
	flags.Float64VarP(&c.TotalLogThreshold, "total-log-threshold", "t", c.TotalLogThreshold, "Total CPU usage percentage to start logging at")
	flags.Float64VarP(&c.ProcessLogThreshold, "process-log-threshold", "p", c.ProcessLogThreshold, "Single process CPU usage percentage to start logging at")
	flags.IntVarP(&c.NumberOfProcessesToShow, "number-of-processes-to-show", "n", c.NumberOfProcessesToShow, "Number of top CPU consuming processes to log and show")
	flags.BoolVarP(&c.CLI, "cli", "c", c.CLI, "CLI mode: periodically write stats to stdout")
	flags.StringVarP(&c.LogFile, "log-file", "l", c.LogFile, "Path to log file")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MeasurementTime < 1 {
		return fmt.Errorf("measurement time must be at least 1 second, got %d", c.MeasurementTime)
	}
	if c.TimeBetweenMeasurements < 0 {
		return fmt.Errorf("time between measurements cannot be negative, got %d", c.TimeBetweenMeasurements)
	}
	if c.TotalLogThreshold < 0 {
		return fmt.Errorf("total log threshold cannot be negative, got %v", c.TotalLogThreshold)
	}
	if c.ProcessLogThreshold < 0 {
		return fmt.Errorf("process log threshold cannot be negative, got %v", c.ProcessLogThreshold)
	}
	if c.NumberOfProcessesToShow < 1 {
		return fmt.Errorf("number of processes to show must be at least 1, got %d", c.NumberOfProcessesToShow)
	}
	return nil
}

// MeasurementWindow returns the sampling window as a duration.
func (c *Config) MeasurementWindow() time.Duration {
	return time.Duration(c.MeasurementTime) * time.Second
}

// CycleInterval returns the wait between cycles as a duration.
func (c *Config) CycleInterval() time.Duration {
	return time.Duration(c.TimeBetweenMeasurements) * time.Second
}

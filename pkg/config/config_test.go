package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	if c.TimeBetweenMeasurements != 5 {
		t.Errorf("TimeBetweenMeasurements = %d; want 5", c.TimeBetweenMeasurements)
	}
	if c.MeasurementTime != 1 {
		t.Errorf("MeasurementTime = %d; want 1", c.MeasurementTime)
	}
	if c.TotalLogThreshold != 30.0 {
		t.Errorf("TotalLogThreshold = %v; want 30.0", c.TotalLogThreshold)
	}
	if c.ProcessLogThreshold != 15.0 {
		t.Errorf("ProcessLogThreshold = %v; want 15.0", c.ProcessLogThreshold)
	}
	if c.NumberOfProcessesToShow != 5 {
		t.Errorf("NumberOfProcessesToShow = %d; want 5", c.NumberOfProcessesToShow)
	}
	if c.CLI {
		t.Error("CLI = true; want false by default")
	}
	if c.LogFile != "" {
		t.Errorf("LogFile = %q; want disabled by default", c.LogFile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero measurement time", func(c *Config) { c.MeasurementTime = 0 }, true},
		{"negative interval", func(c *Config) { c.TimeBetweenMeasurements = -1 }, true},
		{"zero interval", func(c *Config) { c.TimeBetweenMeasurements = 0 }, false},
		{"negative total threshold", func(c *Config) { c.TotalLogThreshold = -0.1 }, true},
		{"negative process threshold", func(c *Config) { c.ProcessLogThreshold = -1 }, true},
		{"zero rows", func(c *Config) { c.NumberOfProcessesToShow = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddFlagsParsesShorthand(t *testing.T) {
	c := New()
	cmd := &cobra.Command{Use: "test"}
	c.AddFlags(cmd)

	err := cmd.ParseFlags([]string{
		"-b", "10", "-m", "2", "-t", "50.5", "-p", "20", "-n", "3", "-c", "-l", "/tmp/cpu.log",
	})
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	if c.TimeBetweenMeasurements != 10 || c.MeasurementTime != 2 {
		t.Errorf("interval flags = (%d, %d); want (10, 2)", c.TimeBetweenMeasurements, c.MeasurementTime)
	}
	if c.TotalLogThreshold != 50.5 || c.ProcessLogThreshold != 20 {
		t.Errorf("threshold flags = (%v, %v); want (50.5, 20)", c.TotalLogThreshold, c.ProcessLogThreshold)
	}
	if c.NumberOfProcessesToShow != 3 {
		t.Errorf("row flag = %d; want 3", c.NumberOfProcessesToShow)
	}
	if !c.CLI || c.LogFile != "/tmp/cpu.log" {
		t.Errorf("output flags = (%v, %q); want (true, /tmp/cpu.log)", c.CLI, c.LogFile)
	}
}

func TestDurationHelpers(t *testing.T) {
	c := New()
	c.MeasurementTime = 2
	c.TimeBetweenMeasurements = 7

	if got := c.MeasurementWindow(); got != 2*time.Second {
		t.Errorf("MeasurementWindow() = %v; want 2s", got)
	}
	if got := c.CycleInterval(); got != 7*time.Second {
		t.Errorf("CycleInterval() = %v; want 7s", got)
	}
}

// Package watching runs the measurement loop: sample, rank, evaluate
// thresholds, report.
package watching

import (
	"context"
	"strings"
	"time"

	"cpuwatch/pkg/alerting"
	"cpuwatch/pkg/config"
	"cpuwatch/pkg/reporting"
	"cpuwatch/pkg/sampling"
)

// Watcher owns one monitoring run. All per-cycle state (samples,
// messages, the rendered table) is created and discarded within a
// single iteration.
type Watcher struct {
	cfg       *config.Config
	sampler   *sampling.Sampler
	evaluator alerting.Evaluator
	console   reporting.Sink
	logFile   reporting.Sink
	now       func() time.Time
}

// New wires a Watcher from a validated configuration, a sampler, and
// the two output sinks.
func New(cfg *config.Config, sampler *sampling.Sampler, console, logFile reporting.Sink) *Watcher {
	return &Watcher{
		cfg:     cfg,
		sampler: sampler,
		evaluator: alerting.Evaluator{
			TotalThreshold:   cfg.TotalLogThreshold,
			ProcessThreshold: cfg.ProcessLogThreshold,
		},
		console: console,
		logFile: logFile,
		now:     time.Now,
	}
}

// Run executes measurement cycles until the context is cancelled
// (returns nil) or a sampler or sink error occurs.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		sample, ok, err := w.measure(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := w.report(sample); err != nil {
			return err
		}

		if !sleep(ctx, w.cfg.CycleInterval()) {
			return nil
		}
	}
}

// RunOnce executes a single measurement cycle and reports it. Used by
// the snapshot command.
func (w *Watcher) RunOnce(ctx context.Context) error {
	sample, ok, err := w.measure(ctx)
	if err != nil || !ok {
		return err
	}
	return w.report(sample)
}

// measure performs one begin/wait/end sampling pass. ok is false when
// the context was cancelled during the measurement window.
func (w *Watcher) measure(ctx context.Context) (*sampling.SystemSample, bool, error) {
	if err := w.sampler.Begin(); err != nil {
		return nil, false, err
	}
	if !sleep(ctx, w.cfg.MeasurementWindow()) {
		return nil, false, nil
	}
	sample, err := w.sampler.End(w.cfg.MeasurementWindow())
	if err != nil {
		return nil, false, err
	}
	return sample, true, nil
}

// report evaluates the thresholds and writes to both sinks. The table
// is rendered at most once per cycle and shared between the log entry
// and the console report.
func (w *Watcher) report(sample *sampling.SystemSample) error {
	var table string
	renderTable := func() string {
		if table == "" {
			table = reporting.FormatTable(sample, w.now(), w.cfg.NumberOfProcessesToShow)
		}
		return table
	}

	systemMsg, systemAlert := w.evaluator.SystemAlert(sample.TotalUsage)
	if systemAlert {
		if err := w.logFile.Write(systemMsg + "\n" + renderTable()); err != nil {
			return err
		}
	}

	processMsg, processAlert := w.evaluator.ProcessAlerts(sample.Processes)
	if processAlert {
		if err := w.logFile.Write(processMsg); err != nil {
			return err
		}
	}

	if !w.cfg.CLI {
		return nil
	}

	var b strings.Builder
	b.WriteString(renderTable())
	if systemAlert {
		b.WriteString("\n\n")
		b.WriteString(systemMsg)
	}
	if processAlert {
		b.WriteString("\n\n")
		b.WriteString(processMsg)
	}
	return w.console.Write(b.String())
}

// sleep blocks for d or until the context is cancelled. It returns
// false on cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Package alerting decides when measured CPU usage crosses the
// configured thresholds and builds the alert messages.
package alerting

import (
	"fmt"
	"strings"

	"cpuwatch/pkg/sampling"
)

// Evaluator holds the alert thresholds for one run. Both comparisons
// are inclusive: a value exactly on the threshold triggers the alert.
type Evaluator struct {
	TotalThreshold   float64
	ProcessThreshold float64
}

// SystemAlert reports whether the system-wide total breaches the
// threshold and, if so, returns the alert message.
func (e Evaluator) SystemAlert(totalUsage float64) (string, bool) {
	if totalUsage < e.TotalThreshold {
		return "", false
	}
	return fmt.Sprintf("Total CPU usage threshold of %.2f%% exceeded -> %.2f%%",
		e.TotalThreshold, totalUsage), true
}

// ProcessAlerts walks the descending-sorted process list from the top
// and collects one line per process at or above the threshold. The
// walk stops at the first process below threshold: with the list
// sorted, breaching processes are always a prefix.
func (e Evaluator) ProcessAlerts(processes []sampling.ProcessSample) (string, bool) {
	var b strings.Builder
	for _, p := range processes {
		if p.Usage < e.ProcessThreshold {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Single process CPU usage threshold of %.2f%% exceeded -> [Pid: %d] Name: '%s' Usage: %.2f%%",
			e.ProcessThreshold, p.Pid, p.Name, p.Usage)
	}

	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

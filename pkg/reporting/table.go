// Package reporting renders measurement results and writes them to
// the configured output sinks.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"cpuwatch/pkg/sampling"
)

const (
	tableWidth  = 80
	pidWidth    = 10
	nameWidth   = 50
	usageWidth  = 10
	inlineWidth = tableWidth - 2 // content between the border pipes
)

// TimestampLayout is the ISO-8601 layout used everywhere output is
// stamped: nanosecond precision with a numeric timezone offset, e.g.
// 2023-03-08T21:19:47.101382300+01:00.
const TimestampLayout = "2006-01-02T15:04:05.000000000-07:00"

// Timestamp formats t in the fixed output layout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatTable renders the top rows of a ranked sample as a fixed-width
// bordered table. Column content widths are 10/50/10 regardless of
// content; longer names widen the row rather than being truncated.
func FormatTable(sample *sampling.SystemSample, now time.Time, topN int) string {
	var b strings.Builder

	b.WriteString(center("CPU usage", tableWidth, '-'))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "|%s|\n", center(formatUsage(sample.TotalUsage), inlineWidth, ' '))
	fmt.Fprintf(&b, "|%s|\n", center(Timestamp(now), inlineWidth, ' '))
	b.WriteString(strings.Repeat("-", tableWidth))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "| %-*s | %-*s | %-*s |\n", pidWidth, "PID", nameWidth, "Name", usageWidth, "Usage")
	fmt.Fprintf(&b, "|%s|%s|%s|\n",
		strings.Repeat("-", pidWidth+2),
		strings.Repeat("-", nameWidth+2),
		strings.Repeat("-", usageWidth+2))

	for i, p := range sample.Processes {
		if i >= topN {
			break
		}
		fmt.Fprintf(&b, "| %-*s | %-*s | %-*s |\n",
			pidWidth, fmt.Sprintf("%d", p.Pid),
			nameWidth, p.Name,
			usageWidth, formatUsage(p.Usage))
	}

	b.WriteString(strings.Repeat("-", tableWidth))
	return b.String()
}

func formatUsage(usage float64) string {
	return fmt.Sprintf("%.2f %%", usage)
}

// center pads s with the pad byte on both sides to the given width,
// extra padding going to the right. Content wider than the width is
// returned untouched.
func center(s string, width int, pad byte) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), gap-left)
}

package sampling

import (
	"fmt"
	"sort"
	"time"
)

// ProcessSample is one process's usage over a single measurement
// window. Usage is a percentage normalized by physical core count, so
// a process saturating one of four cores reads 25%.
type ProcessSample struct {
	Pid   int32
	Name  string
	Usage float64
}

// SystemSample is the ranked result of one measurement cycle.
// Processes are ordered by descending usage and TotalUsage is the sum
// of all per-process usages. The total is deliberately not capped at
// 100%: each core contributes independently.
type SystemSample struct {
	Processes  []ProcessSample
	TotalUsage float64
}

// Sampler computes per-process CPU usage from two readings of the
// process table taken at the start and end of a measurement window.
type Sampler struct {
	provider Provider
	cores    int
	baseline []baselineEntry
}

type baselineEntry struct {
	proc Process
	cpu  time.Duration
}

// NewSampler creates a Sampler. Failing to resolve the physical core
// count makes normalized percentages meaningless, so it is an error
// callers must treat as fatal.
func NewSampler(provider Provider) (*Sampler, error) {
	cores, err := provider.PhysicalCores()
	if err != nil {
		return nil, err
	}
	return &Sampler{provider: provider, cores: cores}, nil
}

// Begin enumerates the running processes and records a baseline CPU
// time for each. The baseline is only a reference point; no usage can
// be derived until End.
func (s *Sampler) Begin() error {
	procs, err := s.provider.Processes()
	if err != nil {
		return err
	}

	s.baseline = s.baseline[:0]
	for _, proc := range procs {
		cpuTime, err := proc.CPUTime()
		if err != nil {
			continue
		}
		s.baseline = append(s.baseline, baselineEntry{proc: proc, cpu: cpuTime})
	}

	return nil
}

// End re-reads the CPU time of every process captured by Begin and
// derives its usage over the given window. Processes that exited
// during the window are silently dropped. The result is ranked and
// totalled via Aggregate.
func (s *Sampler) End(window time.Duration) (*SystemSample, error) {
	if window <= 0 {
		return nil, fmt.Errorf("invalid measurement window: %v", window)
	}

	samples := make([]ProcessSample, 0, len(s.baseline))
	for _, entry := range s.baseline {
		cpuTime, err := entry.proc.CPUTime()
		if err != nil {
			continue
		}

		consumed := cpuTime - entry.cpu
		if consumed < 0 {
			consumed = 0
		}

		samples = append(samples, ProcessSample{
			Pid:   entry.proc.Pid(),
			Name:  entry.proc.Name(),
			Usage: consumed.Seconds() / window.Seconds() / float64(s.cores) * 100,
		})
	}

	s.baseline = s.baseline[:0]
	return Aggregate(samples), nil
}

// Aggregate ranks the samples by descending usage and sums the total.
// The sort is stable, so equal usages keep their enumeration order and
// ranking is deterministic within a run. Summation follows the sorted
// order so the total is reproducible for identical input.
func Aggregate(samples []ProcessSample) *SystemSample {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Usage > samples[j].Usage
	})

	var total float64
	for _, sample := range samples {
		total += sample.Usage
	}

	return &SystemSample{Processes: samples, TotalUsage: total}
}

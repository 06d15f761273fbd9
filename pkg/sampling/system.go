package sampling

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// SystemProvider reads the live process table through gopsutil.
type SystemProvider struct{}

// NewSystemProvider creates a Provider backed by the running system.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{}
}

// Processes enumerates all running processes. Processes whose name can
// no longer be read (typically already exiting) are skipped.
func (p *SystemProvider) Processes() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	handles := make([]Process, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		handles = append(handles, &systemProcess{proc: proc, name: name})
	}

	return handles, nil
}

// PhysicalCores returns the physical core count.
func (p *SystemProvider) PhysicalCores() (int, error) {
	count, err := cpu.Counts(false)
	if err != nil {
		return 0, fmt.Errorf("failed to determine physical core count: %w", err)
	}
	if count <= 0 {
		return 0, fmt.Errorf("invalid physical core count: %d", count)
	}
	return count, nil
}

// systemProcess adapts a gopsutil process to the Process interface.
type systemProcess struct {
	proc *process.Process
	name string
}

func (s *systemProcess) Pid() int32   { return s.proc.Pid }
func (s *systemProcess) Name() string { return s.name }

func (s *systemProcess) CPUTime() (time.Duration, error) {
	times, err := s.proc.Times()
	if err != nil {
		return 0, err
	}
	return time.Duration((times.User + times.System) * float64(time.Second)), nil
}

// Package sampling measures per-process CPU usage over a bounded window.
package sampling

import "time"

// Process is a handle to one running process.
type Process interface {
	// Pid returns the OS process id.
	Pid() int32

	// Name returns the process name captured at enumeration time.
	Name() string

	// CPUTime returns the total CPU time the process has consumed so
	// far. It fails once the process has exited.
	CPUTime() (time.Duration, error)
}

// Provider is the capability interface over the OS process table.
// The system implementation wraps gopsutil; tests substitute a fake.
type Provider interface {
	// Processes enumerates the currently running processes.
	Processes() ([]Process, error)

	// PhysicalCores returns the number of physical CPU cores. Usage
	// percentages are normalized by this count.
	PhysicalCores() (int, error)
}

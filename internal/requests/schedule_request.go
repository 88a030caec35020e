package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

// MaxProcesses caps the size of a single scheduling request.
const MaxProcesses = 100

var (
	ErrNoProcesses      = errors.New("at least one process is required")
	ErrTooManyProcesses = fmt.Errorf("at most %d processes are supported", MaxProcesses)
	ErrInvalidQuantum   = errors.New("time_quantum must be greater than zero")
)

// Job describes one process in a schedule request.
type Job struct {
	ProcessID   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

// ScheduleRequest is the request body shared by all scheduling endpoints.
// TimeQuantum is only consulted by the round-robin and comparison endpoints;
// when omitted (zero) the configured default applies.
type ScheduleRequest struct {
	Jobs        []Job `json:"processes"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

// Validate checks the boundary constraints: a non-empty set of at most
// MaxProcesses jobs, unique process ids >= 1, arrival >= 0, burst > 0, and a
// non-negative quantum (zero means "use the default").
func (r *ScheduleRequest) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrNoProcesses
	}
	if len(r.Jobs) > MaxProcesses {
		return ErrTooManyProcesses
	}
	if r.TimeQuantum < 0 {
		return ErrInvalidQuantum
	}

	seen := make(map[int]bool, len(r.Jobs))
	for _, j := range r.Jobs {
		if j.ProcessID < 1 {
			return fmt.Errorf("process_id %d: must be >= 1", j.ProcessID)
		}
		if seen[j.ProcessID] {
			return fmt.Errorf("process_id %d: duplicate", j.ProcessID)
		}
		seen[j.ProcessID] = true
		if j.ArrivalTime < 0 {
			return fmt.Errorf("process_id %d: arrival_time must be >= 0", j.ProcessID)
		}
		if j.BurstTime <= 0 {
			return fmt.Errorf("process_id %d: burst_time must be > 0", j.ProcessID)
		}
	}
	return nil
}

// ProcessSet converts the request jobs into the engine's process type.
func (r *ScheduleRequest) ProcessSet() []core.Process {
	ps := make([]core.Process, 0, len(r.Jobs))
	for _, j := range r.Jobs {
		ps = append(ps, core.Process{
			PID:      j.ProcessID,
			Arrival:  j.ArrivalTime,
			Burst:    j.BurstTime,
			Priority: j.Priority,
		})
	}
	return ps
}

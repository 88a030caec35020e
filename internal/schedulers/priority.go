package schedulers

import "cpu-scheduler/internal/core"

// PriorityNonPreemptive schedules non-preemptively, always dispatching the
// ready process with the smallest priority value (smaller = higher priority).
// Ties fall back to (arrival, pid).
func PriorityNonPreemptive(ps []core.Process) core.Result {
	return runNonPreemptive("Priority (Non-Preemptive)", ps, higherPriority)
}

func higherPriority(a, b core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}

package schedulers

import "cpu-scheduler/internal/core"

// ShortestJobFirst schedules non-preemptively, always dispatching the ready
// process with the smallest burst. Ties fall back to (arrival, pid).
func ShortestJobFirst(ps []core.Process) core.Result {
	return runNonPreemptive("SJF (Non-Preemptive)", ps, shorterBurst)
}

func shorterBurst(a, b core.Process) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}

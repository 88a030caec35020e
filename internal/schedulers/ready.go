package schedulers

import "cpu-scheduler/internal/core"

// pickFunc reports whether a should be dispatched before b when both are
// ready. Each non-preemptive algorithm supplies its own selection key; the
// final (arrival, pid) tie-break is part of the pick function so selection
// stays fully deterministic.
type pickFunc func(a, b core.Process) bool

// runNonPreemptive is the shared control loop for SJF and Priority: at each
// decision point it scans the not-yet-run processes with arrival <= t, picks
// the best according to pick, and runs it to completion. When nothing is
// ready it jumps the clock to the next arrival and emits an idle segment.
func runNonPreemptive(name string, ps []core.Process, pick pickFunc) core.Result {
	sorted := byArrival(ps)
	done := make(map[int]bool, len(sorted))

	tl := make(core.Timeline, 0, len(sorted))
	t := 0
	for finished := 0; finished < len(sorted); {
		best := -1
		for i, p := range sorted {
			if done[p.PID] {
				continue
			}
			if p.Arrival > t {
				break // sorted by arrival, nothing further is ready
			}
			if best < 0 || pick(p, sorted[best]) {
				best = i
			}
		}

		if best < 0 {
			// Nothing ready: jump to the earliest unscheduled arrival.
			for _, p := range sorted {
				if !done[p.PID] {
					tl = append(tl, core.IdleSegment(t, p.Arrival))
					t = p.Arrival
					break
				}
			}
			continue
		}

		p := sorted[best]
		tl = append(tl, core.RunSegment(p.PID, t, t+p.Burst))
		t += p.Burst
		done[p.PID] = true
		finished++
	}
	return deriveResult(name, ps, tl)
}

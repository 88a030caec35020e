package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// byArrival returns a copy of the process set sorted by (arrival, pid).
// Every algorithm shares this order for deterministic tie-breaking; the
// caller's slice is never touched.
func byArrival(ps []core.Process) []core.Process {
	sorted := make([]core.Process, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Arrival != sorted[j].Arrival {
			return sorted[i].Arrival < sorted[j].Arrival
		}
		return sorted[i].PID < sorted[j].PID
	})
	return sorted
}

// FirstComeFirstServe runs the processes non-preemptively in (arrival, pid)
// order, emitting an idle segment whenever the clock has not yet reached the
// next arrival.
func FirstComeFirstServe(ps []core.Process) core.Result {
	sorted := byArrival(ps)

	tl := make(core.Timeline, 0, len(sorted))
	t := 0
	for _, p := range sorted {
		if t < p.Arrival {
			tl = append(tl, core.IdleSegment(t, p.Arrival))
			t = p.Arrival
		}
		tl = append(tl, core.RunSegment(p.PID, t, t+p.Burst))
		t += p.Burst
	}
	return deriveResult("FCFS", ps, tl)
}

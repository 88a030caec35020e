package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// deriveResult computes per-process metrics from a finished timeline.
// Completion is the maximum segment end per pid, turnaround is completion
// minus arrival, waiting is turnaround minus burst. Details are ordered by
// pid.
func deriveResult(name string, ps []core.Process, tl core.Timeline) core.Result {
	completion := make(map[int]int, len(ps))
	for _, s := range tl {
		if s.Kind != core.SegmentRun {
			continue
		}
		if s.End > completion[s.PID] {
			completion[s.PID] = s.End
		}
	}

	ordered := make([]core.Process, len(ps))
	copy(ordered, ps)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].PID < ordered[j].PID })

	details := make([]core.ProcessMetrics, 0, len(ordered))
	for _, p := range ordered {
		comp := completion[p.PID]
		turnaround := comp - p.Arrival
		waiting := turnaround - p.Burst
		// Negative values cannot occur on a well-formed timeline; the clamp
		// keeps malformed input from producing nonsense metrics.
		if turnaround < 0 {
			turnaround = 0
		}
		if waiting < 0 {
			waiting = 0
		}
		details = append(details, core.ProcessMetrics{
			PID:        p.PID,
			Completion: comp,
			Turnaround: turnaround,
			Waiting:    waiting,
		})
	}

	avgWaiting, avgTurnaround := util.CalculateAverages(details)
	return core.Result{
		Algorithm:         name,
		Timeline:          tl,
		Details:           details,
		AverageWaiting:    avgWaiting,
		AverageTurnaround: avgTurnaround,
	}
}

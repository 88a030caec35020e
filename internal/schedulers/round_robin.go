package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// RoundRobin schedules preemptively with a fixed time quantum. Each dispatch
// runs the head of a FIFO ready queue for min(quantum, remaining) time units
// and emits its own segment; segments are never merged across re-insertions,
// so the last segment of a process carries its true completion time.
//
// Processes that arrive while a slice is executing enter the queue before
// the preempted process re-enters it.
//
// A quantum <= 0 is clamped to 1. This is a guard against callers that skip
// validation, not a policy: the request layer rejects non-positive quanta.
func RoundRobin(ps []core.Process, quantum int) core.Result {
	if quantum <= 0 {
		quantum = 1
	}
	name := fmt.Sprintf("Round Robin (q=%d)", quantum)

	sorted := byArrival(ps)
	remaining := make(map[int]int, len(sorted))
	for _, p := range sorted {
		remaining[p.PID] = p.Burst
	}

	tl := make(core.Timeline, 0, len(sorted))
	queue := make([]int, 0, len(sorted))
	t := 0
	next := 0 // cursor into sorted for processes not yet enqueued

	enqueueArrived := func(upTo int) {
		for next < len(sorted) && sorted[next].Arrival <= upTo {
			queue = append(queue, sorted[next].PID)
			next++
		}
	}

	if len(sorted) > 0 {
		if t < sorted[0].Arrival {
			tl = append(tl, core.IdleSegment(t, sorted[0].Arrival))
			t = sorted[0].Arrival
		}
		enqueueArrived(t)
	}

	for finished := 0; finished < len(sorted); {
		if len(queue) == 0 {
			if next >= len(sorted) {
				break
			}
			if t < sorted[next].Arrival {
				tl = append(tl, core.IdleSegment(t, sorted[next].Arrival))
				t = sorted[next].Arrival
			}
			enqueueArrived(t)
			continue
		}

		pid := queue[0]
		queue = queue[1:]

		run := quantum
		if rem := remaining[pid]; rem < run {
			run = rem
		}
		tl = append(tl, core.RunSegment(pid, t, t+run))
		t += run
		remaining[pid] -= run

		// New arrivals go ahead of the process that just ran.
		enqueueArrived(t)

		if remaining[pid] > 0 {
			queue = append(queue, pid)
		} else {
			finished++
		}
	}
	return deriveResult(name, ps, tl)
}

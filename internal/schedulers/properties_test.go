package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cpu-scheduler/internal/core"
)

// allAlgorithms enumerates every scheduling function under a stable name so
// shared invariants run against each of them.
func allAlgorithms() map[string]func([]core.Process) core.Result {
	return map[string]func([]core.Process) core.Result{
		"fcfs":     FirstComeFirstServe,
		"sjf":      ShortestJobFirst,
		"priority": PriorityNonPreemptive,
		"rr_q1":    func(ps []core.Process) core.Result { return RoundRobin(ps, 1) },
		"rr_q2":    func(ps []core.Process) core.Result { return RoundRobin(ps, 2) },
		"rr_q3":    func(ps []core.Process) core.Result { return RoundRobin(ps, 3) },
	}
}

func processSets() map[string][]core.Process {
	return map[string][]core.Process{
		"demo":          core.DemoProcessSet(),
		"single":        {{PID: 1, Arrival: 0, Burst: 4, Priority: 1}},
		"late_first":    {{PID: 1, Arrival: 5, Burst: 3, Priority: 2}, {PID: 2, Arrival: 6, Burst: 1, Priority: 1}},
		"same_arrival":  {{PID: 1, Arrival: 0, Burst: 3, Priority: 2}, {PID: 2, Arrival: 0, Burst: 3, Priority: 2}, {PID: 3, Arrival: 0, Burst: 1, Priority: 1}},
		"sparse":        {{PID: 1, Arrival: 0, Burst: 2, Priority: 1}, {PID: 2, Arrival: 10, Burst: 2, Priority: 2}, {PID: 3, Arrival: 20, Burst: 2, Priority: 3}},
		"unsorted_pids": {{PID: 9, Arrival: 3, Burst: 4, Priority: 1}, {PID: 4, Arrival: 0, Burst: 6, Priority: 9}, {PID: 7, Arrival: 3, Burst: 2, Priority: 5}},
	}
}

// checkTimeline asserts the timeline invariants: segments ordered and
// non-empty, contiguous except for an optional leading gap before the first
// arrival, and with idle time only in explicit idle segments.
func checkTimeline(t *testing.T, tl core.Timeline) {
	t.Helper()
	if len(tl) > 0 && tl[0].Start != 0 {
		t.Errorf("timeline must start at 0, got %d", tl[0].Start)
	}
	for i, s := range tl {
		if s.Start >= s.End {
			t.Errorf("segment %d: zero or negative duration: %+v", i, s)
		}
		if i > 0 && tl[i-1].End != s.Start {
			t.Errorf("gap between segment %d and %d: %+v then %+v", i-1, i, tl[i-1], s)
		}
	}
}

func TestAlgorithms_timelineCoverage(t *testing.T) {
	for algoName, run := range allAlgorithms() {
		for setName, ps := range processSets() {
			t.Run(algoName+"/"+setName, func(t *testing.T) {
				checkTimeline(t, run(ps).Timeline)
			})
		}
	}
}

func TestAlgorithms_burstConservation(t *testing.T) {
	for algoName, run := range allAlgorithms() {
		for setName, ps := range processSets() {
			t.Run(algoName+"/"+setName, func(t *testing.T) {
				executed := make(map[int]int)
				for _, s := range run(ps).Timeline {
					if s.Kind == core.SegmentRun {
						executed[s.PID] += s.Duration()
					}
				}
				for _, p := range ps {
					if executed[p.PID] != p.Burst {
						t.Errorf("pid %d: executed %d time units, want burst %d", p.PID, executed[p.PID], p.Burst)
					}
				}
			})
		}
	}
}

func TestAlgorithms_nonNegativeMetrics(t *testing.T) {
	for algoName, run := range allAlgorithms() {
		for setName, ps := range processSets() {
			t.Run(algoName+"/"+setName, func(t *testing.T) {
				byPID := make(map[int]core.Process, len(ps))
				for _, p := range ps {
					byPID[p.PID] = p
				}
				for _, d := range run(ps).Details {
					// Recompute without the defensive clamp: a negative value
					// here means an algorithm defect that the clamp would mask.
					p := byPID[d.PID]
					turnaround := d.Completion - p.Arrival
					waiting := turnaround - p.Burst
					if turnaround < 0 || waiting < 0 {
						t.Errorf("pid %d: pre-clamp turnaround %d waiting %d", d.PID, turnaround, waiting)
					}
					if d.Turnaround != turnaround || d.Waiting != waiting {
						t.Errorf("pid %d: clamp fired: got (%d,%d) want (%d,%d)",
							d.PID, d.Turnaround, d.Waiting, turnaround, waiting)
					}
				}
			})
		}
	}
}

func TestAlgorithms_idempotent(t *testing.T) {
	for algoName, run := range allAlgorithms() {
		for setName, ps := range processSets() {
			t.Run(algoName+"/"+setName, func(t *testing.T) {
				first := run(ps)
				second := run(ps)
				if diff := cmp.Diff(first, second); diff != "" {
					t.Errorf("repeated run differs (-first +second):\n%s", diff)
				}
			})
		}
	}
}

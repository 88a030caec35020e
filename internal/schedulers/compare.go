package schedulers

import (
	"errors"
	"sort"

	"cpu-scheduler/internal/core"
)

// ErrEmptyProcessSet is returned when an operation that needs at least one
// process receives an empty set.
var ErrEmptyProcessSet = errors.New("process set is empty")

// CompareAll runs FCFS, SJF, Priority, and Round Robin (with the given
// quantum) over the same process set and returns the results ranked by
// ascending average waiting time. The sort is stable, so equal averages keep
// the run order above; the first entry is the best algorithm.
func CompareAll(ps []core.Process, quantum int) ([]core.Result, error) {
	if len(ps) == 0 {
		return nil, ErrEmptyProcessSet
	}

	results := []core.Result{
		FirstComeFirstServe(ps),
		ShortestJobFirst(ps),
		PriorityNonPreemptive(ps),
		RoundRobin(ps, quantum),
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AverageWaiting < results[j].AverageWaiting
	})
	return results, nil
}

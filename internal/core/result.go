package core

// ProcessMetrics holds the derived times for one process after a run.
type ProcessMetrics struct {
	PID        int
	Completion int
	Turnaround int
	Waiting    int
}

// Result captures everything produced by one algorithm run: the timeline plus
// per-process metrics (ordered by pid) and their averages.
type Result struct {
	Algorithm         string
	Timeline          Timeline
	Details           []ProcessMetrics
	AverageWaiting    float64
	AverageTurnaround float64
}

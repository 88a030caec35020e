package util

import "cpu-scheduler/internal/core"

// CalculateAverages returns the arithmetic mean waiting and turnaround times
// over the given per-process metrics. Both are 0 for an empty slice.
func CalculateAverages(details []core.ProcessMetrics) (averageWaiting, averageTurnaround float64) {
	if len(details) == 0 {
		return 0, 0
	}

	var waitingSum float64
	var turnaroundSum float64
	for _, d := range details {
		waitingSum += float64(d.Waiting)
		turnaroundSum += float64(d.Turnaround)
	}

	count := float64(len(details))
	averageWaiting = waitingSum / count
	averageTurnaround = turnaroundSum / count
	return
}

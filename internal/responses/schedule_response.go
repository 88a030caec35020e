package responses

import "cpu-scheduler/internal/core"

// SegmentResponse is one timeline span. Idle segments carry no process id.
type SegmentResponse struct {
	ProcessID int  `json:"process_id,omitempty"`
	Idle      bool `json:"idle,omitempty"`
	StartTime int  `json:"start_time"`
	EndTime   int  `json:"end_time"`
}

// ProcessResponse holds the derived metrics for one process.
type ProcessResponse struct {
	ProcessID      int `json:"process_id"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

// ScheduleResponse is the result of one algorithm run.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              []SegmentResponse `json:"timeline"`
	TotalTime             int               `json:"total_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}

// ComparisonResponse holds all four algorithm results ranked by ascending
// average waiting time, plus the name of the best one.
type ComparisonResponse struct {
	BestAlgorithm string             `json:"best_algorithm"`
	Results       []ScheduleResponse `json:"results"`
}

// FromResult converts an engine result into its wire representation.
func FromResult(r core.Result) ScheduleResponse {
	timeline := make([]SegmentResponse, 0, len(r.Timeline))
	for _, s := range r.Timeline {
		seg := SegmentResponse{StartTime: s.Start, EndTime: s.End}
		if s.Kind == core.SegmentIdle {
			seg.Idle = true
		} else {
			seg.ProcessID = s.PID
		}
		timeline = append(timeline, seg)
	}

	details := make([]ProcessResponse, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, ProcessResponse{
			ProcessID:      d.PID,
			CompletionTime: d.Completion,
			TurnAroundTime: d.Turnaround,
			WaitingTime:    d.Waiting,
		})
	}

	return ScheduleResponse{
		Algorithm:             r.Algorithm,
		Timeline:              timeline,
		TotalTime:             r.Timeline.Makespan(),
		AverageWaitingTime:    r.AverageWaiting,
		AverageTurnAroundTime: r.AverageTurnaround,
		Details:               details,
	}
}

// FromResults converts a ranked comparison into its wire representation.
func FromResults(ranked []core.Result) ComparisonResponse {
	results := make([]ScheduleResponse, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, FromResult(r))
	}
	resp := ComparisonResponse{Results: results}
	if len(ranked) > 0 {
		resp.BestAlgorithm = ranked[0].Algorithm
	}
	return resp
}

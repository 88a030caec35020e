package requests

import (
	"errors"
	"strings"
	"testing"
)

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		Jobs: []Job{
			{ProcessID: 1, ArrivalTime: 0, BurstTime: 7, Priority: 3},
			{ProcessID: 2, ArrivalTime: 2, BurstTime: 4, Priority: 1},
		},
	}
}

func TestScheduleRequest_Validate(t *testing.T) {
	r := validRequest()
	if err := r.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestScheduleRequest_Validate_empty(t *testing.T) {
	r := ScheduleRequest{}
	if err := r.Validate(); !errors.Is(err, ErrNoProcesses) {
		t.Errorf("expected ErrNoProcesses, got %v", err)
	}
}

func TestScheduleRequest_Validate_tooMany(t *testing.T) {
	r := ScheduleRequest{}
	for i := 1; i <= MaxProcesses+1; i++ {
		r.Jobs = append(r.Jobs, Job{ProcessID: i, BurstTime: 1})
	}
	if err := r.Validate(); !errors.Is(err, ErrTooManyProcesses) {
		t.Errorf("expected ErrTooManyProcesses, got %v", err)
	}
}

func TestScheduleRequest_Validate_negativeQuantum(t *testing.T) {
	r := validRequest()
	r.TimeQuantum = -1
	if err := r.Validate(); !errors.Is(err, ErrInvalidQuantum) {
		t.Errorf("expected ErrInvalidQuantum, got %v", err)
	}
}

func TestScheduleRequest_Validate_fieldErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ScheduleRequest)
		wantSub string
	}{
		{"zero pid", func(r *ScheduleRequest) { r.Jobs[0].ProcessID = 0 }, "must be >= 1"},
		{"duplicate pid", func(r *ScheduleRequest) { r.Jobs[1].ProcessID = 1 }, "duplicate"},
		{"negative arrival", func(r *ScheduleRequest) { r.Jobs[0].ArrivalTime = -3 }, "arrival_time"},
		{"zero burst", func(r *ScheduleRequest) { r.Jobs[1].BurstTime = 0 }, "burst_time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			err := r.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("expected error containing %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestScheduleRequest_ProcessSet(t *testing.T) {
	r := validRequest()
	ps := r.ProcessSet()
	if len(ps) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(ps))
	}
	if ps[0].PID != 1 || ps[0].Burst != 7 || ps[1].Priority != 1 {
		t.Errorf("unexpected conversion: %+v", ps)
	}
}

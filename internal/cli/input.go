package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// loadInput returns the process set to simulate: the CSV file at path, or the
// built-in demo dataset when path is empty.
func loadInput(path string) ([]core.Process, error) {
	if path == "" {
		return core.DemoProcessSet(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	ps, err := LoadProcesses(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ps, nil
}

// LoadProcesses parses CSV rows of the form pid,arrival,burst[,priority].
// The parsed set goes through the same validation as the HTTP boundary.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	request := requests.ScheduleRequest{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("row %d: expected pid,arrival,burst[,priority], got %d fields", i+1, len(row))
		}
		fields := make([]int, len(row))
		for j, s := range row {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			fields[j] = n
		}
		job := requests.Job{ProcessID: fields[0], ArrivalTime: fields[1], BurstTime: fields[2]}
		if len(fields) == 4 {
			job.Priority = fields[3]
		}
		request.Jobs = append(request.Jobs, job)
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request.ProcessSet(), nil
}

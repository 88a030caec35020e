package core

// Process holds the immutable input data for one simulated process.
// Lower Priority value means higher priority.
type Process struct {
	PID      int // unique, >= 1
	Arrival  int // time the process becomes eligible, >= 0
	Burst    int // total cpu time required, > 0
	Priority int
}

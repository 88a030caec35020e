package core

// SegmentKind tags a timeline segment as either cpu execution or idle time.
type SegmentKind int

const (
	SegmentRun SegmentKind = iota
	SegmentIdle
)

// Segment is one contiguous span [Start, End) of the timeline. PID is only
// meaningful when Kind is SegmentRun.
type Segment struct {
	Kind  SegmentKind
	PID   int
	Start int
	End   int
}

// RunSegment returns an execution segment for pid over [start, end).
func RunSegment(pid, start, end int) Segment {
	return Segment{Kind: SegmentRun, PID: pid, Start: start, End: end}
}

// IdleSegment returns an idle segment over [start, end).
func IdleSegment(start, end int) Segment {
	return Segment{Kind: SegmentIdle, Start: start, End: end}
}

// Duration returns the length of the segment.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Timeline is the ordered sequence of segments produced by one algorithm run.
type Timeline []Segment

// Makespan returns the end time of the last segment, or 0 for an empty timeline.
func (tl Timeline) Makespan() int {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End
}

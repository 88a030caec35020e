package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
)

// DefaultGanttWidth is the bar width above which long timelines get compressed.
const DefaultGanttWidth = 80

func segmentLabel(s core.Segment) string {
	if s.Kind == core.SegmentIdle {
		return "IDLE"
	}
	return "P" + strconv.Itoa(s.PID)
}

// Gantt writes a scaled ASCII chart of the timeline: a bar row, a label row
// with process ids (idle spans labeled IDLE), and a time ruler. Timelines
// longer than width time units are compressed to fit.
func Gantt(w io.Writer, tl core.Timeline, width int) {
	if len(tl) == 0 {
		fmt.Fprintln(w, "(no segments)")
		return
	}
	if width <= 0 {
		width = DefaultGanttWidth
	}

	total := tl.Makespan()
	scale := 1.0
	if total > width {
		scale = float64(total) / float64(width)
	}

	cellWidth := func(s core.Segment) int {
		cells := int(math.Round(float64(s.Duration()) / scale))
		if cells < 1 {
			cells = 1
		}
		return cells
	}

	var bar, labels strings.Builder
	for _, s := range tl {
		cells := cellWidth(s)
		bar.WriteString("|")
		bar.WriteString(strings.Repeat("-", cells))

		labels.WriteString("|")
		lab := segmentLabel(s)
		if cells >= len(lab) {
			left := (cells - len(lab)) / 2
			right := cells - len(lab) - left
			labels.WriteString(strings.Repeat(" ", left) + lab + strings.Repeat(" ", right))
		} else {
			labels.WriteString(strings.Repeat(" ", cells))
		}
	}
	bar.WriteString("|")
	labels.WriteString("|")

	fmt.Fprintln(w, bar.String())
	fmt.Fprintln(w, labels.String())

	// Time ruler: segment end times aligned under the bars.
	fmt.Fprint(w, "0")
	for _, s := range tl {
		cells := cellWidth(s)
		t := strconv.Itoa(s.End)
		spaces := cells + 1 - len(t) // +1 for the vertical bar
		if spaces < 1 {
			spaces = 1
		}
		fmt.Fprint(w, strings.Repeat(" ", spaces), t)
	}
	fmt.Fprintln(w)
}

// ProcessTable writes the input process set as a table.
func ProcessTable(w io.Writer, ps []core.Process) {
	fmt.Fprintln(w, "Processes (lower priority value = higher priority)")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Priority"})
	for _, p := range ps {
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Priority),
		})
	}
	table.Render()
}

// MetricsTable writes per-process metrics for one run, with the averages in
// the footer.
func MetricsTable(w io.Writer, ps []core.Process, res core.Result) {
	byPID := make(map[int]core.Process, len(ps))
	for _, p := range ps {
		byPID[p.PID] = p
	}

	rows := make([][]string, 0, len(res.Details))
	for _, d := range res.Details {
		p := byPID[d.PID]
		rows = append(rows, []string{
			fmt.Sprint(d.PID),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(d.Completion),
			fmt.Sprint(d.Turnaround),
			fmt.Sprint(d.Waiting),
		})
	}

	fmt.Fprintln(w, "Per-process metrics")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Complete", "Turnaround", "Waiting"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", res.AverageWaiting)})
	table.Render()
}

// Report writes the full result of one run: title, Gantt chart, and metrics.
func Report(w io.Writer, ps []core.Process, res core.Result, ganttWidth int) {
	fmt.Fprintf(w, "=== %s ===\n", res.Algorithm)
	Gantt(w, res.Timeline, ganttWidth)
	MetricsTable(w, ps, res)
}

// ComparisonTable writes the ranked comparison (lower average waiting time is
// better) and names the best algorithm in the footer.
func ComparisonTable(w io.Writer, ranked []core.Result) {
	fmt.Fprintln(w, "Algorithm comparison (lower is better)")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround"})
	for _, r := range ranked {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.3f", r.AverageWaiting),
			fmt.Sprintf("%.3f", r.AverageTurnaround),
		})
	}
	if len(ranked) > 0 {
		table.SetFooter([]string{"Best", ranked[0].Algorithm, ""})
	}
	table.Render()
}

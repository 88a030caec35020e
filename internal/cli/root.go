package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

var (
	flagInput      string
	flagGanttWidth int
)

// NewRootCmd creates the root cobra command for the schedctl CLI.
func NewRootCmd() *cobra.Command {
	cfg := config.GetSchedulerConfig()

	root := &cobra.Command{
		Use:          "schedctl",
		Short:        "schedctl simulates and compares CPU scheduling algorithms",
		Long:         "schedctl simulates FCFS, SJF, Priority, and Round Robin scheduling over a process set and reports per-process metrics, Gantt charts, and algorithm comparisons.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "CSV file with pid,arrival,burst[,priority] rows (default: built-in demo dataset)")
	root.PersistentFlags().IntVar(&flagGanttWidth, "gantt-width", cfg.GanttChartWidth, "Maximum width of the Gantt chart in characters")

	root.AddCommand(
		newAlgorithmCmd("fcfs", "Run First-Come-First-Served", schedulers.FirstComeFirstServe),
		newAlgorithmCmd("sjf", "Run Shortest-Job-First (non-preemptive)", schedulers.ShortestJobFirst),
		newAlgorithmCmd("priority", "Run Priority (non-preemptive)", schedulers.PriorityNonPreemptive),
		newRoundRobinCmd(cfg.RoundRobinTimeQuantum),
		newCompareCmd(cfg.RoundRobinTimeQuantum),
		newShowCmd(),
	)

	return root
}

func newAlgorithmCmd(use, short string, run func([]core.Process) core.Result) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := loadInput(flagInput)
			if err != nil {
				return err
			}
			render.Report(cmd.OutOrStdout(), ps, run(ps), flagGanttWidth)
			return nil
		},
	}
}

func newRoundRobinCmd(defaultQuantum int) *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "rr",
		Short: "Run Round Robin (preemptive)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantum <= 0 {
				return requests.ErrInvalidQuantum
			}
			ps, err := loadInput(flagInput)
			if err != nil {
				return err
			}
			render.Report(cmd.OutOrStdout(), ps, schedulers.RoundRobin(ps, quantum), flagGanttWidth)
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantum, "quantum", "q", defaultQuantum, "Time quantum (> 0)")

	return cmd
}

func newCompareCmd(defaultQuantum int) *cobra.Command {
	var quantum int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run all four algorithms and rank them by average waiting time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantum <= 0 {
				return requests.ErrInvalidQuantum
			}
			ps, err := loadInput(flagInput)
			if err != nil {
				return err
			}
			ranked, err := schedulers.CompareAll(ps, quantum)
			if err != nil {
				return err
			}
			render.ComparisonTable(cmd.OutOrStdout(), ranked)
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantum, "quantum", "q", defaultQuantum, "Time quantum for Round Robin (> 0)")

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the process set without running anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := loadInput(flagInput)
			if err != nil {
				return err
			}
			render.ProcessTable(cmd.OutOrStdout(), ps)
			return nil
		},
	}
}

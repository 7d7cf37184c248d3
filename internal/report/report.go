package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Yhrjkcz1/COS/internal/core"
	"github.com/Yhrjkcz1/COS/internal/schedulers"
)

// WriteSchedule prints the Gantt strip and per-process table of one run.
func WriteSchedule(w io.Writer, processes []*core.Process, result schedulers.Result) {
	outputTitle(w, result.Policy.String())
	outputGantt(w, result.Timeline)
	outputSchedule(w, processes, schedulers.Analyze(processes, result))
}

// WriteComparison prints every run followed by a side-by-side summary table.
func WriteComparison(w io.Writer, comparisons []schedulers.Comparison) {
	for _, c := range comparisons {
		WriteSchedule(w, c.Processes, c.Result)
	}

	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Switches", "Utilization", "Throughput"})
	for _, c := range comparisons {
		m := c.Metrics
		table.Append([]string{
			c.Policy.String(),
			fmt.Sprintf("%.2f", m.AverageWaitingTime),
			fmt.Sprintf("%.2f", m.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", m.AverageResponseTime),
			fmt.Sprint(m.ContextSwitches),
			fmt.Sprintf("%.1f%%", m.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", m.CpuThroughput),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		label := s.Occupant.String()
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, fmt.Sprint(s.Start), "\t")
		if len(timeline)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(s.End()))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, processes []*core.Process, m schedulers.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Response", "Turnaround", "Exit"})
	for _, p := range processes {
		s := p.Summary()
		table.Append([]string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(s.StartTime),
			fmt.Sprint(s.WaitingTime),
			fmt.Sprint(s.ResponseTime),
			fmt.Sprint(s.TurnaroundTime),
			fmt.Sprint(s.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", m.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Context switches: %d, idle time: %d, CPU utilization: %.1f%%\n\n",
		m.ContextSwitches, m.IdleTime, m.CpuUtilization*100)
}

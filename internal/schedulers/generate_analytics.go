package schedulers

import (
	"github.com/Yhrjkcz1/COS/internal/core"
	"github.com/Yhrjkcz1/COS/internal/responses"
	"github.com/Yhrjkcz1/COS/internal/util"
)

// Metrics aggregates one run over all its processes.
type Metrics struct {
	TotalTime             int
	IdleTime              int
	ContextSwitches       int
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64
	// busy time / total time
	CpuUtilization float64
	// completed processes per time unit
	CpuThroughput float64
}

// Analyze derives the aggregate metrics of result. processes must be the
// records the run completed.
func Analyze(processes []*core.Process, result Result) Metrics {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)

	metrics := Metrics{
		TotalTime:             result.Makespan(),
		IdleTime:              result.IdleTime(),
		ContextSwitches:       result.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
	}
	if metrics.TotalTime > 0 {
		metrics.CpuUtilization = float64(result.BusyTime()) / float64(metrics.TotalTime)
		metrics.CpuThroughput = float64(len(processes)) / float64(metrics.TotalTime)
	}
	return metrics
}

// GenerateResponse renders a completed run for JSON consumers.
func GenerateResponse(processes []*core.Process, result Result) responses.ScheduleResponse {
	metrics := Analyze(processes, result)

	details := make([]responses.ProcessResponse, 0, len(processes))
	colors := make(map[string]string, len(processes))
	for _, p := range processes {
		details = append(details, generateProcessDetails(p))
		colors[p.ID] = p.Color
	}

	timeline := make([]responses.SegmentResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		segment := responses.SegmentResponse{Start: s.Start, Duration: s.Duration, Idle: s.Occupant.IsIdle()}
		if id, ok := s.Occupant.ProcessID(); ok {
			segment.ProcessId = id
			segment.Color = colors[id]
		}
		timeline = append(timeline, segment)
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Policy.Algorithm.String(),
		TimeQuantum:           result.Policy.TimeQuantum,
		TotalTime:             metrics.TotalTime,
		IdleTime:              metrics.IdleTime,
		ContextSwitches:       metrics.ContextSwitches,
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnAroundTime,
		CpuUtilization:        metrics.CpuUtilization,
		CpuThroughput:         metrics.CpuThroughput,
		Details:               details,
		Timeline:              timeline,
	}
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	summary := p.Summary()
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      summary.StartTime,
		CompletionTime: summary.CompletionTime,
		ResponseTime:   summary.ResponseTime,
		TurnAroundTime: summary.TurnaroundTime,
		WaitingTime:    summary.WaitingTime,
	}
}

package util

import "github.com/Yhrjkcz1/COS/internal/core"

// CalculateAverage averages the derived timings of completed processes.
func CalculateAverage(processes []*core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, p := range processes {
		summary := p.Summary()
		waitingTimeSum += float64(summary.WaitingTime)
		responseTimeSum += float64(summary.ResponseTime)
		turnAroundTimeSum += float64(summary.TurnaroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

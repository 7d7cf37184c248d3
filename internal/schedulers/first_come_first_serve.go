package schedulers

import "github.com/Yhrjkcz1/COS/internal/core"

func firstComeFirstServe(processes []*core.Process, tl *timeline, _ int) {
	now := 0
	for _, p := range byArrival(processes) {
		now = tl.idleUntil(now, p.ArrivalTime)
		now = tl.execute(p, now, p.RemainingTime)
	}
}

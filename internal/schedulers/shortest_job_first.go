package schedulers

import "github.com/Yhrjkcz1/COS/internal/core"

func shortestJobFirst(processes []*core.Process, tl *timeline, _ int) {
	runNonPreemptive(processes, tl, shorterJob)
}

func shorterJob(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return earlierArrival(a, b)
}

func shorterRemaining(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return earlierArrival(a, b)
}

// shortestRemainingTimeFirst re-evaluates the choice at every arrival and
// completion. Between two such events the chosen process runs undisturbed.
func shortestRemainingTimeFirst(processes []*core.Process, tl *timeline, _ int) {
	pending := byArrival(processes)
	ready := make([]*core.Process, 0, len(pending))
	next := 0
	now := 0

	for next < len(pending) || len(ready) > 0 {
		for next < len(pending) && pending[next].ArrivalTime <= now {
			ready = append(ready, pending[next])
			next++
		}
		if len(ready) == 0 {
			now = tl.idleUntil(now, pending[next].ArrivalTime)
			continue
		}

		best := 0
		for i := 1; i < len(ready); i++ {
			if shorterRemaining(ready[i], ready[best]) {
				best = i
			}
		}
		chosen := ready[best]

		// run until it finishes or the next arrival forces a new decision
		slice := chosen.RemainingTime
		if next < len(pending) {
			if untilArrival := pending[next].ArrivalTime - now; untilArrival < slice {
				slice = untilArrival
			}
		}
		now = tl.execute(chosen, now, slice)

		if chosen.RemainingTime == 0 {
			ready = append(ready[:best], ready[best+1:]...)
		}
	}
}

package schedulers

import "github.com/Yhrjkcz1/COS/internal/core"

func priorityScheduling(processes []*core.Process, tl *timeline, _ int) {
	runNonPreemptive(processes, tl, higherPriority)
}

// lower number wins
func higherPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return earlierArrival(a, b)
}

package schedulers

import "github.com/Yhrjkcz1/COS/internal/core"

func roundRobin(processes []*core.Process, tl *timeline, timeQuantum int) {
	pending := byArrival(processes)
	readyQueue := make([]*core.Process, 0, len(pending))
	next := 0
	now := 0

	admit := func(until int) {
		for next < len(pending) && pending[next].ArrivalTime <= until {
			readyQueue = append(readyQueue, pending[next])
			next++
		}
	}

	admit(now)
	for len(readyQueue) > 0 || next < len(pending) {
		if len(readyQueue) == 0 {
			now = tl.idleUntil(now, pending[next].ArrivalTime)
			admit(now)
			continue
		}

		process := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := timeQuantum
		if process.RemainingTime < slice {
			slice = process.RemainingTime
		}
		now = tl.execute(process, now, slice)

		// whatever arrived during the slice queues ahead of the preempted process
		admit(now)
		if process.RemainingTime > 0 {
			readyQueue = append(readyQueue, process)
		}
	}
}

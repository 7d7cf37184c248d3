package schedulers

import (
	"sort"

	"github.com/Yhrjkcz1/COS/internal/core"
)

// timeline accumulates the trace and context switches of a single run.
type timeline struct {
	segments []core.Segment
	switches int

	// coalesce merges back-to-back slices of the same process into one segment.
	coalesce bool

	// last process to hold the CPU; cleared by an idle gap
	last *core.Process
}

// execute runs p from now for duration time units and returns the new time.
// It records the first dispatch and finalizes p once nothing remains.
func (t *timeline) execute(p *core.Process, now, duration int) int {
	if !p.Started() {
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime
	}

	if t.last != nil && t.last != p {
		t.switches++
	}

	n := len(t.segments)
	if t.coalesce && t.last == p && n > 0 && t.segments[n-1].End() == now {
		t.segments[n-1].Duration += duration
	} else {
		t.segments = append(t.segments, core.Segment{
			Occupant: core.Running(p.ID),
			Start:    now,
			Duration: duration,
		})
	}
	t.last = p

	now += duration
	p.RemainingTime -= duration
	if p.RemainingTime == 0 {
		p.CompletionTime = now
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
	return now
}

// idleUntil leaves the CPU empty from now to until and returns until.
func (t *timeline) idleUntil(now, until int) int {
	if until <= now {
		return now
	}
	n := len(t.segments)
	if n > 0 && t.segments[n-1].Occupant.IsIdle() && t.segments[n-1].End() == now {
		t.segments[n-1].Duration += until - now
	} else {
		t.segments = append(t.segments, core.Segment{
			Occupant: core.Idle,
			Start:    now,
			Duration: until - now,
		})
	}
	t.last = nil
	return until
}

// byArrival returns a copy of processes ordered by arrival time, then id.
func byArrival(processes []*core.Process) []*core.Process {
	ordered := make([]*core.Process, len(processes))
	copy(ordered, processes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ArrivalTime != ordered[j].ArrivalTime {
			return ordered[i].ArrivalTime < ordered[j].ArrivalTime
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

// earlierArrival breaks ties between otherwise equal candidates.
func earlierArrival(a, b *core.Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// runNonPreemptive repeatedly picks the best eligible process by less and
// runs it to completion, idling forward when nothing has arrived yet.
func runNonPreemptive(processes []*core.Process, tl *timeline, less func(a, b *core.Process) bool) {
	pending := byArrival(processes)
	now := 0
	for len(pending) > 0 {
		best := -1
		for i, p := range pending {
			if p.ArrivalTime > now {
				break
			}
			if best < 0 || less(p, pending[best]) {
				best = i
			}
		}
		if best < 0 {
			now = tl.idleUntil(now, pending[0].ArrivalTime)
			continue
		}

		chosen := pending[best]
		pending = append(pending[:best], pending[best+1:]...)
		now = tl.execute(chosen, now, chosen.RemainingTime)
	}
}

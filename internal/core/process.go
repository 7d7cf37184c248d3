package core

import "fmt"

// Unset marks a derived field that has not been computed yet.
const Unset = -1

// Process is a single schedulable job. ArrivalTime, BurstTime and Priority
// are inputs; every other field is written by a scheduling run.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	// lower value = higher priority
	Priority int

	RemainingTime  int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int

	// Color is an opaque display tag carried for visualizers.
	Color string
}

// Summary holds the derived timings of a completed process.
type Summary struct {
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

func NewProcess(id string, arrivalTime, burstTime, priority int) *Process {
	p := &Process{
		ID:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	p.Reset()
	return p
}

// Reset restores the record to its pre-run state so it can be scheduled again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.CompletionTime = Unset
	p.WaitingTime = Unset
	p.TurnaroundTime = Unset
	p.ResponseTime = Unset
}

func (p *Process) Started() bool {
	return p.StartTime != Unset
}

func (p *Process) Completed() bool {
	return p.CompletionTime != Unset
}

// Clone returns an independent copy of the record.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

// Summary returns the derived timings. It panics when the process has not
// completed, since the fields are meaningless until then.
func (p *Process) Summary() Summary {
	if !p.Completed() {
		panic(fmt.Sprintf("core: process %q read before completion", p.ID))
	}
	return Summary{
		StartTime:      p.StartTime,
		CompletionTime: p.CompletionTime,
		WaitingTime:    p.WaitingTime,
		TurnaroundTime: p.TurnaroundTime,
		ResponseTime:   p.ResponseTime,
	}
}

func (p *Process) String() string {
	return fmt.Sprintf("Process %s: Arrival=%d, Burst=%d, Priority=%d", p.ID, p.ArrivalTime, p.BurstTime, p.Priority)
}

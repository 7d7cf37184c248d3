package core

// Occupant is whatever holds the CPU during a segment: a process or nothing.
// The idle case is a flag, so no process id can ever be mistaken for it.
type Occupant struct {
	processID string
	idle      bool
}

// Idle is the occupant of the CPU while no process is eligible.
var Idle = Occupant{idle: true}

func Running(processID string) Occupant {
	return Occupant{processID: processID}
}

func (o Occupant) IsIdle() bool {
	return o.idle
}

// ProcessID returns the id of the running process; ok is false for Idle.
func (o Occupant) ProcessID() (id string, ok bool) {
	if o.idle {
		return "", false
	}
	return o.processID, true
}

func (o Occupant) String() string {
	if o.idle {
		return "IDLE"
	}
	return o.processID
}

// Segment is a contiguous stretch of CPU time held by one occupant.
type Segment struct {
	Occupant Occupant
	Start    int
	Duration int
}

func (s Segment) End() int {
	return s.Start + s.Duration
}

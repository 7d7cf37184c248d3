package schedulers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Yhrjkcz1/COS/internal/core"
)

// Algorithm enumerates the supported scheduling policies.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	ShortestRemainingTimeFirst
	PriorityScheduling
	RoundRobin
)

// Algorithms lists every policy in comparison order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	PriorityScheduling,
	RoundRobin,
}

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe:        "FCFS",
	ShortestJobFirst:           "SJF-NonPreemptive",
	ShortestRemainingTimeFirst: "SJF-Preemptive",
	PriorityScheduling:         "Priority",
	RoundRobin:                 "RoundRobin",
}

var algorithmAliases = map[string]Algorithm{
	"fcfs":              FirstComeFirstServe,
	"sjf":               ShortestJobFirst,
	"sjf-nonpreemptive": ShortestJobFirst,
	"srtf":              ShortestRemainingTimeFirst,
	"sjf-preemptive":    ShortestRemainingTimeFirst,
	"priority":          PriorityScheduling,
	"rr":                RoundRobin,
	"roundrobin":        RoundRobin,
	"round-robin":       RoundRobin,
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAlgorithm accepts a canonical name or a short alias, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", invalid(RuleUnknownAlgorithm, ""), name)
}

// Policy selects an algorithm. TimeQuantum is only read for RoundRobin.
type Policy struct {
	Algorithm   Algorithm
	TimeQuantum int
}

func (p Policy) String() string {
	if p.Algorithm == RoundRobin {
		return p.Algorithm.String() + " (q=" + strconv.Itoa(p.TimeQuantum) + ")"
	}
	return p.Algorithm.String()
}

// Result is the outcome of one scheduling run.
type Result struct {
	Policy          Policy
	Timeline        []core.Segment
	ContextSwitches int
}

// Makespan is the completion time of the last process.
func (r Result) Makespan() int {
	if len(r.Timeline) == 0 {
		return 0
	}
	return r.Timeline[len(r.Timeline)-1].End()
}

func (r Result) IdleTime() int {
	idle := 0
	for _, s := range r.Timeline {
		if s.Occupant.IsIdle() {
			idle += s.Duration
		}
	}
	return idle
}

func (r Result) BusyTime() int {
	return r.Makespan() - r.IdleTime()
}

type strategy func(processes []*core.Process, tl *timeline, quantum int)

var strategies = map[Algorithm]strategy{
	FirstComeFirstServe:        firstComeFirstServe,
	ShortestJobFirst:           shortestJobFirst,
	ShortestRemainingTimeFirst: shortestRemainingTimeFirst,
	PriorityScheduling:         priorityScheduling,
	RoundRobin:                 roundRobin,
}

// Schedule runs processes under policy, filling in every derived field of
// each process. Input is validated before anything is touched; on error no
// process is modified. The slice order is left as given.
func Schedule(processes []*core.Process, policy Policy) (Result, error) {
	schedule, ok := strategies[policy.Algorithm]
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", invalid(RuleUnknownAlgorithm, ""), policy.Algorithm)
	}
	if err := validate(processes, policy); err != nil {
		return Result{}, err
	}
	if policy.Algorithm != RoundRobin {
		policy.TimeQuantum = 0
	}

	for _, p := range processes {
		p.Reset()
	}

	tl := &timeline{coalesce: policy.Algorithm == ShortestRemainingTimeFirst}
	schedule(processes, tl, policy.TimeQuantum)

	return Result{
		Policy:          policy,
		Timeline:        tl.segments,
		ContextSwitches: tl.switches,
	}, nil
}

func ScheduleFirstComeFirstServe(processes []*core.Process) (Result, error) {
	return Schedule(processes, Policy{Algorithm: FirstComeFirstServe})
}

func ScheduleShortestJobFirst(processes []*core.Process) (Result, error) {
	return Schedule(processes, Policy{Algorithm: ShortestJobFirst})
}

func ScheduleShortestRemainingTimeFirst(processes []*core.Process) (Result, error) {
	return Schedule(processes, Policy{Algorithm: ShortestRemainingTimeFirst})
}

func SchedulePriority(processes []*core.Process) (Result, error) {
	return Schedule(processes, Policy{Algorithm: PriorityScheduling})
}

func ScheduleRoundRobin(processes []*core.Process, timeQuantum int) (Result, error) {
	return Schedule(processes, Policy{Algorithm: RoundRobin, TimeQuantum: timeQuantum})
}

func validate(processes []*core.Process, policy Policy) error {
	if len(processes) == 0 {
		return invalid(RuleEmptyProcessSet, "")
	}
	if policy.Algorithm == RoundRobin && policy.TimeQuantum <= 0 {
		return invalid(RuleNonPositiveQuantum, "")
	}

	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if p == nil {
			return invalid(RuleNilProcess, "")
		}
		if _, dup := seen[p.ID]; dup {
			return invalid(RuleDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.BurstTime <= 0 {
			return invalid(RuleNonPositiveBurst, p.ID)
		}
		if p.ArrivalTime < 0 {
			return invalid(RuleNegativeArrival, p.ID)
		}
	}
	return nil
}

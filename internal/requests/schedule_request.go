package requests

import "github.com/Yhrjkcz1/COS/internal/core"

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
	Color       string `json:"color,omitempty"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum is only used by round robin; 0 means the configured default.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

// Processes builds a fresh process record for every job.
func (r ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		p := core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
		p.Color = job.Color
		processes = append(processes, p)
	}
	return processes
}

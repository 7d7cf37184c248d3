package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

// SegmentResponse is one bar of the Gantt chart. ProcessId is empty for idle time.
type SegmentResponse struct {
	ProcessId string `json:"process_id,omitempty"`
	Idle      bool   `json:"idle"`
	Start     int    `json:"start"`
	Duration  int    `json:"duration"`
	Color     string `json:"color,omitempty"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SegmentResponse `json:"timeline"`
}

type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Rule      string `json:"rule,omitempty"`
	ProcessId string `json:"process_id,omitempty"`
}

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yhrjkcz1/COS/config"
	"github.com/Yhrjkcz1/COS/internal/logger"
	"github.com/Yhrjkcz1/COS/internal/responses"
	"github.com/Yhrjkcz1/COS/internal/schedulers"
)

const threeJobs = `{"jobs":[
	{"process_id":"P1","arrival_time":0,"burst_time":5,"priority":2},
	{"process_id":"P2","arrival_time":1,"burst_time":3,"priority":1},
	{"process_id":"P3","arrival_time":2,"burst_time":4,"priority":3}
]}`

func doRequest(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	cfg := &config.SchedulerConfig{
		Port:                  9095,
		LogLevel:              "error",
		RoundRobinTimeQuantum: 2,
		ComparisonTimeQuanta:  []int{2, 4},
	}
	app := NewApp(NewSchedulerHandlerImpl(cfg, logger.New(io.Discard, "error")))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHandler_Schedule(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		body            string
		wantAlgorithm   string
		wantQuantum     int
		wantOrder       []string
		wantSwitches    int
		wantAverageWait float64
	}{
		{
			name:            "fcfs",
			path:            "/api/v1/fcfs",
			body:            threeJobs,
			wantAlgorithm:   "FCFS",
			wantOrder:       []string{"P1", "P2", "P3"},
			wantSwitches:    2,
			wantAverageWait: 10.0 / 3,
		},
		{
			name:            "priority",
			path:            "/api/v1/priority",
			body:            threeJobs,
			wantAlgorithm:   "Priority",
			wantOrder:       []string{"P1", "P2", "P3"},
			wantSwitches:    2,
			wantAverageWait: 10.0 / 3,
		},
		{
			name:            "sjf",
			path:            "/api/v1/sjf",
			body:            threeJobs,
			wantAlgorithm:   "SJF-NonPreemptive",
			wantOrder:       []string{"P1", "P2", "P3"},
			wantSwitches:    2,
			wantAverageWait: 10.0 / 3,
		},
		{
			name:            "srtf",
			path:            "/api/v1/srtf",
			body:            threeJobs,
			wantAlgorithm:   "SJF-Preemptive",
			wantOrder:       []string{"P1", "P2", "P1", "P3"},
			wantSwitches:    3,
			wantAverageWait: 3,
		},
		{
			name:            "round robin with configured quantum",
			path:            "/api/v1/rr",
			body:            threeJobs,
			wantAlgorithm:   "RoundRobin",
			wantQuantum:     2,
			wantOrder:       []string{"P1", "P2", "P3", "P1", "P2", "P3", "P1"},
			wantSwitches:    6,
			wantAverageWait: 17.0 / 3,
		},
		{
			name:            "round robin with request quantum",
			path:            "/api/v1/rr",
			body:            strings.Replace(threeJobs, `{"jobs"`, `{"time_quantum":4,"jobs"`, 1),
			wantAlgorithm:   "RoundRobin",
			wantQuantum:     4,
			wantOrder:       []string{"P1", "P2", "P3", "P1"},
			wantSwitches:    3,
			wantAverageWait: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got responses.ScheduleResponse
			decode(t, resp, &got)

			assert.Equal(t, tt.wantAlgorithm, got.Algorithm)
			assert.Equal(t, tt.wantQuantum, got.TimeQuantum)
			assert.Equal(t, 12, got.TotalTime)
			assert.Zero(t, got.IdleTime)
			assert.Equal(t, tt.wantSwitches, got.ContextSwitches)
			assert.InDelta(t, tt.wantAverageWait, got.AverageWaitingTime, 1e-9)
			assert.InDelta(t, 1.0, got.CpuUtilization, 1e-9)
			assert.Len(t, got.Details, 3)

			order := make([]string, 0, len(got.Timeline))
			for _, s := range got.Timeline {
				order = append(order, s.ProcessId)
			}
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestHandler_Schedule_IdleSegment(t *testing.T) {
	body := `{"jobs":[
		{"process_id":"P1","arrival_time":0,"burst_time":2,"color":"red"},
		{"process_id":"P2","arrival_time":5,"burst_time":2}
	]}`
	resp := doRequest(t, http.MethodPost, "/api/v1/fcfs", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got responses.ScheduleResponse
	decode(t, resp, &got)
	assert.Equal(t, []responses.SegmentResponse{
		{ProcessId: "P1", Start: 0, Duration: 2, Color: "red"},
		{Idle: true, Start: 2, Duration: 3},
		{ProcessId: "P2", Start: 5, Duration: 2},
	}, got.Timeline)
	assert.Equal(t, 3, got.IdleTime)
	assert.Zero(t, got.ContextSwitches)
}

func TestHandler_Schedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		body          string
		wantStatus    int
		wantRule      string
		wantProcessId string
	}{
		{
			name:       "empty jobs",
			path:       "/api/v1/fcfs",
			body:       `{"jobs":[]}`,
			wantStatus: http.StatusBadRequest,
			wantRule:   schedulers.RuleEmptyProcessSet,
		},
		{
			name:       "negative quantum",
			path:       "/api/v1/rr",
			body:       `{"time_quantum":-1,"jobs":[{"process_id":"P1","arrival_time":0,"burst_time":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantRule:   schedulers.RuleNonPositiveQuantum,
		},
		{
			name: "duplicate id",
			path: "/api/v1/sjf",
			body: `{"jobs":[
				{"process_id":"P1","arrival_time":0,"burst_time":2},
				{"process_id":"P1","arrival_time":1,"burst_time":2}
			]}`,
			wantStatus:    http.StatusBadRequest,
			wantRule:      schedulers.RuleDuplicateID,
			wantProcessId: "P1",
		},
		{
			name:       "malformed body",
			path:       "/api/v1/fcfs",
			body:       `{"jobs":`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var got responses.ErrorResponse
			decode(t, resp, &got)
			assert.NotEmpty(t, got.Error)
			assert.Equal(t, tt.wantRule, got.Rule)
			assert.Equal(t, tt.wantProcessId, got.ProcessId)
		})
	}
}

func TestHandler_AllAlgorithms(t *testing.T) {
	resp := doRequest(t, http.MethodPost, "/api/v1/all", threeJobs)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got responses.ComparisonResponse
	decode(t, resp, &got)

	names := make([]string, 0, len(got.Results))
	quanta := make([]int, 0, len(got.Results))
	for _, r := range got.Results {
		names = append(names, r.Algorithm)
		quanta = append(quanta, r.TimeQuantum)
		assert.Equal(t, 12, r.TotalTime)
	}
	assert.Equal(t, []string{"FCFS", "SJF-NonPreemptive", "SJF-Preemptive", "Priority", "RoundRobin", "RoundRobin"}, names)
	assert.Equal(t, []int{0, 0, 0, 0, 2, 4}, quanta)
}

func TestHandler_AllAlgorithms_RequestQuantum(t *testing.T) {
	body := strings.Replace(threeJobs, `{"jobs"`, `{"time_quantum":3,"jobs"`, 1)
	resp := doRequest(t, http.MethodPost, "/api/v1/all", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got responses.ComparisonResponse
	decode(t, resp, &got)
	require.Len(t, got.Results, 5)
	assert.Equal(t, 3, got.Results[4].TimeQuantum)
}

func TestHandler_Health(t *testing.T) {
	resp := doRequest(t, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	decode(t, resp, &got)
	assert.Equal(t, "ok", got["status"])
}

func TestHandler_NotFound(t *testing.T) {
	resp := doRequest(t, http.MethodPost, "/api/v1/lottery", threeJobs)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got responses.ErrorResponse
	decode(t, resp, &got)
	assert.NotEmpty(t, got.Error)
}

package requests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Job
		wantErr bool
	}{
		{
			name:  "with header and priority",
			input: "id,arrival,burst,priority\nP1,0,5,2\nP2,1,3,1\n",
			want: []Job{
				{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5, Priority: 2},
				{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1},
			},
		},
		{
			name:  "without header or priority",
			input: "P1, 0, 5\n# comment\nP2, 2, 4\n",
			want: []Job{
				{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5},
				{ProcessId: "P2", ArrivalTime: 2, BurstTime: 4},
			},
		},
		{
			name:    "non integer burst",
			input:   "P1,0,five\n",
			wantErr: true,
		},
		{
			name:    "too few columns",
			input:   "P1,0\n",
			wantErr: true,
		},
		{
			name:    "empty id",
			input:   ",0,3\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadJobs(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleRequests_Processes(t *testing.T) {
	req := ScheduleRequests{Jobs: []Job{
		{ProcessId: "P1", ArrivalTime: 1, BurstTime: 4, Priority: 3, Color: "#abcdef"},
	}}

	processes := req.Processes()
	require.Len(t, processes, 1)
	p := processes[0]
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, 1, p.ArrivalTime)
	assert.Equal(t, 4, p.BurstTime)
	assert.Equal(t, 4, p.RemainingTime)
	assert.Equal(t, 3, p.Priority)
	assert.Equal(t, "#abcdef", p.Color)
	assert.False(t, p.Started())
}

package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidRow = errors.New("invalid process row")

// LoadJobs reads a process set from CSV rows of the form
// id,arrival,burst[,priority]. A first row whose arrival column is not a
// number is treated as a header and skipped.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		job, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[1]))
	return err != nil
}

func parseRow(row []string) (Job, error) {
	if len(row) < 3 || len(row) > 4 {
		return Job{}, fmt.Errorf("%w: want 3 or 4 columns, got %d", ErrInvalidRow, len(row))
	}

	job := Job{ProcessId: strings.TrimSpace(row[0])}
	if job.ProcessId == "" {
		return Job{}, fmt.Errorf("%w: empty process id", ErrInvalidRow)
	}

	fields := []*int{&job.ArrivalTime, &job.BurstTime, &job.Priority}
	for i, col := range row[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return Job{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidRow, col)
		}
		*fields[i] = v
	}
	return job, nil
}

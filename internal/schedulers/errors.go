package schedulers

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Validation rules reported in InvalidInputError.Rule.
const (
	RuleEmptyProcessSet    = "empty process set"
	RuleNilProcess         = "nil process"
	RuleDuplicateID        = "duplicate process id"
	RuleNonPositiveBurst   = "burst time must be > 0"
	RuleNegativeArrival    = "arrival time must be >= 0"
	RuleNonPositiveQuantum = "time quantum must be > 0"
	RuleUnknownAlgorithm   = "unknown algorithm"
)

type InvalidInputError struct {
	Rule string
	// ProcessID is empty when the rule is not about a single process.
	ProcessID string
}

func (e *InvalidInputError) Error() string {
	if e.ProcessID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Rule)
	}
	return fmt.Sprintf("%s: %s (process %q)", ErrInvalidInput, e.Rule, e.ProcessID)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(rule, processID string) error {
	return &InvalidInputError{Rule: rule, ProcessID: processID}
}

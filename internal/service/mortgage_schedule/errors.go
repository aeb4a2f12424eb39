package mortgageschedule

import (
	"errors"
	"fmt"
)

var (
	ErrNonPositiveRiskScore = errors.New("risk score must be greater than zero")
	ErrZeroMonthlyRate      = errors.New("monthly interest rate is zero")
)

// ExecutionError is the single failure shape returned to the host. Message is
// one of the fixed execution-failed texts; Cause keeps the original error.
type ExecutionError struct {
	Message string
	Cause   error
}

func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

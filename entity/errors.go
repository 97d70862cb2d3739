package entity

import (
	"errors"
	"fmt"
)

var (
	ErrArithmetic     = errors.New("arithmetic failure")
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)
	ErrNonFinite      = fmt.Errorf("%w: non-finite value", ErrArithmetic)
	ErrDomain         = fmt.Errorf("%w: cube root of non-positive operand", ErrArithmetic)
)

// ComputationError reports the step of the determination that failed.
type ComputationError struct {
	Step string
	Err  error
}

func (e *ComputationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("failed to compute %s: %v", e.Step, e.Err)
}

func (e *ComputationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidSalary  = errors.New("total salary must be a finite, non-negative amount")
	ErrUnknownDriver  = errors.New("driver is not on the roster")
	ErrNonFinite      = errors.New("timesheet figures produce a non-finite salary")
)

type DivisionByZeroError struct {
	Kind DivisionKind
}

func (e *DivisionByZeroError) Error() string {
	switch e.Kind {
	case NoHoursRecorded:
		return "division by zero: no hours recorded"
	case NoOvertimeHours:
		return "division by zero: no overtime (HS) hours recorded"
	case NoRegularHours:
		return "division by zero: no regular hours recorded"
	default:
		return fmt.Sprintf("division by zero: %s", e.Kind)
	}
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

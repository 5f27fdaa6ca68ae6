package outcome

import (
	"fmt"
	"reflect"
)

// StepError attributes a failure to the pipeline step that produced it.
// It wraps the step's own error exactly once, at the point of failure;
// skipped stages never touch it, so errors.Is and errors.As still reach
// the cause.
type StepError struct {
	Step  string
	Index int
	Err   error
}

func (e *StepError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("step %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("step %q (%d): %v", e.Step, e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// IsNil reports whether i is nil, including a typed nil pointer.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	return reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()
}

// Errors flattens an error produced by errors.Join into its parts.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}
	return []error{err}
}

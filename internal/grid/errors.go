package grid

import "fmt"

// ValidationError is a client-side form check failure. It never reaches
// the network; views show Msg inline and block submission.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

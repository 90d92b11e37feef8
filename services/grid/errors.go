package grid

import "fmt"

// RescheduleError reports why a drag gesture was refused. The message is
// shown to the user verbatim.
type RescheduleError struct {
	Code    string
	Message string
}

func (e *RescheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newRescheduleError(code, msg string) error {
	return &RescheduleError{Code: code, Message: msg}
}

const (
	codeOutOfHours       = "outOfHours"
	codeInactiveResource = "inactiveResource"
	codeNotDraggable     = "notDraggable"
	codeNoCandidate      = "noCandidate"
)

package session

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is matched by every OperationError. Hosts that see it
// have wired a session operation in a state where it is not allowed.
var ErrInvalidOperation = errors.New("invalid session operation")

// OperationError reports a session operation called outside its
// precondition, e.g. answering the same question twice.
type OperationError struct {
	Op     string
	Reason string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("session: %s: %s", e.Op, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidOperation) match any OperationError.
func (e *OperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

func invalidOp(op, reason string) error {
	return &OperationError{Op: op, Reason: reason}
}

// SettingsError reports a test setting outside its allowed values.
type SettingsError struct {
	Field  string
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

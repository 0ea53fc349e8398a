package store

import "fmt"

// ValidationError reports a malformed field on a task draft, such as an
// order number that does not match the expected pattern.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown task number.
type NotFoundError struct {
	TaskNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.TaskNumber)
}

// AlreadySentError reports a duplicate send-to-tablet request. It is
// warning grade: the task is in the state the caller asked for.
type AlreadySentError struct {
	TaskNumber string
}

func (e *AlreadySentError) Error() string {
	return fmt.Sprintf("task %s was already sent to tablet", e.TaskNumber)
}

// PersistenceError reports a failed snapshot read or write. Writes are
// best effort, so the store logs these instead of failing mutations.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

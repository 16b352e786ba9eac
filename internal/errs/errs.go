// Package errs defines the error taxonomy shared by the skillbyte stores.
//
// Empty results are not errors: a lesson with no quiz and an empty set of
// selected topics are both valid states the caller branches on.
package errs

import "fmt"

// NotFoundError indicates a lookup by identifier that was expected to
// resolve (topic, lesson, quiz) found nothing.
type NotFoundError struct {
	Kind string // "topic", "lesson", "quiz"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError indicates malformed input or a duplicate identifier.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError indicates a durable-store read or write failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the given operation.
func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// GenerationError indicates the external content-generation call failed
// (transport, truncation, or an unparseable response).
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

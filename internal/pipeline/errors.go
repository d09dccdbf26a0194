package pipeline

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a task invocation failed.
type Kind string

const (
	KindConfiguration Kind = "ConfigurationError"
	KindEmptySource   Kind = "EmptyOrMissingSourceError"
	KindOperation     Kind = "OperationError"
)

// Error is the failure returned by a Task. Op names the operation that was
// attempted and Subject the inputs it involved, e.g. `bucket "a" to bucket "b"`.
type Error struct {
	Kind    Kind
	Op      string
	Subject string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + ": " + e.Op
	if e.Subject != "" {
		msg += " " + e.Subject
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Message is the text reported to the orchestrator. It never includes the
// underlying cause; that goes to the log.
func (e *Error) Message() string {
	switch e.Kind {
	case KindConfiguration:
		if e.Subject == "" {
			return fmt.Sprintf("invalid user parameters for %s", e.Op)
		}
		return fmt.Sprintf("invalid user parameters for %s %s", e.Op, e.Subject)
	case KindEmptySource:
		return fmt.Sprintf("failed to %s %s: source listing returned no objects", e.Op, e.Subject)
	default:
		if e.Subject == "" {
			return fmt.Sprintf("failed to %s", e.Op)
		}
		return fmt.Sprintf("failed to %s %s", e.Op, e.Subject)
	}
}

// ConfigurationError reports missing or malformed user parameters.
func ConfigurationError(op string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Err: errors.WithStack(err)}
}

// EmptySourceError reports a source listing that yielded nothing to work on.
func EmptySourceError(op, subject string) error {
	return &Error{Kind: KindEmptySource, Op: op, Subject: subject, Err: errors.New("no objects listed")}
}

// OperationError reports a rejected or failed call to an external service.
func OperationError(op, subject string, err error) error {
	return &Error{Kind: KindOperation, Op: op, Subject: subject, Err: errors.WithStack(err)}
}

// KindOf returns the failure kind carried by err. Errors that are not a
// *Error are treated as operation failures.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindOperation
}

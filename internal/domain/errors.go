package domain

import "fmt"

// ConfigurationError reports a setting that is missing, invalid or cannot be
// resolved against the chat platform. It aborts a run before any thread is read.
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Setting, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ReconciliationFault wraps a failure while listing threads, messages or
// members. It is logged and never returned to the caller of a run.
type ReconciliationFault struct {
	Op  string
	Err error
}

func (e *ReconciliationFault) Error() string {
	return fmt.Sprintf("reconciliation fault during %s: %v", e.Op, e.Err)
}

func (e *ReconciliationFault) Unwrap() error {
	return e.Err
}

// PublishError reports that today's thread could not be created.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish scrum thread: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

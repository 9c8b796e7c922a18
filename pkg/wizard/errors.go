package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// call has not returned yet.
	ErrSubmitInFlight = errors.New("wizard: submission already in flight")
	// ErrAlreadySubmitted is returned once the session has been submitted.
	ErrAlreadySubmitted = errors.New("wizard: record already submitted")
	// ErrUnknownOption is returned for map types, prefectures or regions that
	// are not part of the catalog, or that do not match the selected map.
	ErrUnknownOption = errors.New("wizard: unknown option")
	// ErrNoSink is returned by Submit when the wizard was built without a sink.
	ErrNoSink = errors.New("wizard: submission sink is nil")
)

// ValidationError reports a required field missing at a step, either when
// advancing or during final validation.
type ValidationError struct {
	Step    Step
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("wizard: step %d invalid (%v): %s", e.Step, e.Fields, e.Message)
	}
	return fmt.Sprintf("wizard: step %d invalid: %s", e.Step, e.Message)
}

// UploadError reports a rejected photo. The record is left unchanged.
type UploadError struct {
	Reason  error
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("wizard: photo rejected: %v", e.Reason)
}

func (e *UploadError) Unwrap() error { return e.Reason }

// TransportError wraps a sink failure. The record is unaffected and the user
// may retry manually.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("wizard: submit: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

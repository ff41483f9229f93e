package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// compile time check for DetailedError interfaces.
var _ ClassError = &DetailedError{}

// DetailedError is the class based error definition.
// Each instance has it's own trackable ID.
type DetailedError struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Classification defines the error classification.
	Classification Class
	// Details contains the detailed information.
	Details string
	// Message is a message used as a string for the
	// golang error interface implementation.
	Message string
	// Operation is the operation name when the error occurred.
	Operation string

	cause error
}

// NewDet creates DetailedError with given 'class' and message 'message'.
func NewDet(c Class, message string) *DetailedError {
	err := newDetailed(c)
	err.Message = message
	return err
}

// NewDetf creates DetailedError instance with provided 'class' with formatted message.
func NewDetf(c Class, format string, args ...interface{}) *DetailedError {
	err := newDetailed(c)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Class implements ClassError.
func (e *DetailedError) Class() Class {
	return e.Classification
}

// Error implements error interface.
func (e *DetailedError) Error() string {
	return e.Message
}

// Cause gets the error that caused given one.
func (e *DetailedError) Cause() error {
	return e.cause
}

// Unwrap returns the wrapped cause.
func (e *DetailedError) Unwrap() error {
	return e.cause
}

// WithCause sets the 'cause' of given error and returns itself.
func (e *DetailedError) WithCause(cause error) *DetailedError {
	e.cause = cause
	return e
}

// WithDetail sets the error 'detail' and returns itself.
func (e *DetailedError) WithDetail(detail string) *DetailedError {
	e.Details = detail
	return e
}

// WithDetailf sets the formatted error detail and returns itself.
func (e *DetailedError) WithDetailf(format string, args ...interface{}) *DetailedError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

func newDetailed(c Class) *DetailedError {
	err := &DetailedError{
		ID:             uuid.New(),
		Classification: c,
	}
	pc, _, _, ok := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if ok && details != nil {
		file, line := details.FileLine(pc)
		_, singleFile := filepath.Split(file)
		err.Operation = details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
	}
	return err
}

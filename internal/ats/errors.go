package ats

import (
	"errors"
	"fmt"
)

// ErrInvalidResume is matched by every error returned for a resume with the wrong shape.
var ErrInvalidResume = errors.New("invalid resume structure")

// InvalidResumeError describes why a resume document was rejected.
type InvalidResumeError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidResumeError) Error() string {
	msg := "invalid resume structure"
	if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InvalidResumeError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrInvalidResume) hold for any InvalidResumeError.
func (e *InvalidResumeError) Is(target error) bool {
	return target == ErrInvalidResume
}

// ErrEnhancerDisabled is returned by enhancers that are switched off. The engine treats it
// like any other enhancer failure but logs it quietly.
var ErrEnhancerDisabled = errors.New("feedback enhancer disabled")

package enhance

import (
	"fmt"

	"github.com/jonathan/ats-scorer/internal/ats"
)

// ErrDisabled is returned by Noop. It is the engine's enhancer-disabled sentinel.
var ErrDisabled = ats.ErrEnhancerDisabled

// Error wraps a failure at one stage of an enhancement call
type Error struct {
	Stage string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enhance %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("enhance %s failed", e.Stage)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

package engine

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned, or raised as a panic value, when a session is
// used after Close
var ErrSessionClosed = errors.New("engine: session closed")

// ResourceError reports a render surface or context that could not be
// created. It is fatal for the session; no retry is attempted.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("render resource %s failed: %v", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

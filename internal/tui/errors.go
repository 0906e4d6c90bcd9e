package tui

import "fmt"

// HostInputError reports a failure reading keyboard or resize events
// from the host terminal. Fatal to the session; terminal state is
// restored before it surfaces.
type HostInputError struct {
	Err error
}

func (e *HostInputError) Error() string {
	return fmt.Sprintf("host input: %v", e.Err)
}

func (e *HostInputError) Unwrap() error {
	return e.Err
}

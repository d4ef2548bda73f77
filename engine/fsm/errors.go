package fsm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInitialState is returned by Initialize when SetInitialState was never called
	ErrNoInitialState = errors.New("initial state not specified")

	// ErrUnknownState is returned when a state identity is not registered
	ErrUnknownState = errors.New("state not registered")

	// ErrNotInitialized is returned when transitioning before Initialize
	ErrNotInitialized = errors.New("machine not initialized")

	// ErrAlreadyInitialized is returned by a second Initialize without an intervening Teardown
	ErrAlreadyInitialized = errors.New("machine already initialized")
)

// ConfigError is a programmer error in machine setup, naming the machine and state identity
type ConfigError struct {
	Machine string
	State   StateID
	// StateName is empty when the machine has no name for State
	StateName string
	Err       error
}

func (e *ConfigError) Error() string {
	switch {
	case e.State == StateNone:
		return fmt.Sprintf("fsm %q: %v", e.Machine, e.Err)
	case e.StateName != "":
		return fmt.Sprintf("fsm %q: state %q (%d): %v", e.Machine, e.StateName, e.State, e.Err)
	default:
		return fmt.Sprintf("fsm %q: state %d: %v", e.Machine, e.State, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

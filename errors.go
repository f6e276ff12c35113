package dfa

import "errors"

// ErrInvalidState is returned when a mutation names a state outside [0, MaxState].
var ErrInvalidState = errors.New("dfa: state out of range")

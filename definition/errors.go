package definition

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind         = errors.New("unknown automaton kind")
	ErrAmbiguousTransition = errors.New("deterministic transition needs exactly one target")
	ErrUnexpectedEpsilon   = errors.New("epsilon moves need kind enfa")
	ErrInvalidTargets      = errors.New("targets must be a state or a list of states")
)

// Error locates a problem inside a document. Path names the offending
// field, e.g. "transitions.0.a".
type Error struct {
	Path string
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every NotFoundError, so callers
// can match with errors.Is without caring about the entity kind.
var ErrNotFound = errors.New("not found")

// ErrIllegalTransition is the sentinel wrapped by every TransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// NotFoundError reports that no entity of the given kind carries the id.
// Updates and deletes against a stale id surface this instead of being
// silently ignored.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// TransitionError reports an update that would move a status outside its
// lifecycle graph.
type TransitionError struct {
	Kind Kind
	ID   string
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s: %v: %s -> %s", e.Kind, e.ID, ErrIllegalTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

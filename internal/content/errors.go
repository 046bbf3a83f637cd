package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Backend when the bucket reports no objects
	// (or no object) for the request.
	ErrNotFound = errors.New("content not found")
	// ErrIDRequired rejects update and delete calls without an object id.
	ErrIDRequired = errors.New("object id is required")
	// ErrTitleRequired rejects create calls without a title.
	ErrTitleRequired = errors.New("object title is required")
	// ErrKindRequired rejects create calls without a known kind.
	ErrKindRequired = errors.New("object type is required")
)

// FetchFailure reports a failed collection read.
type FetchFailure struct {
	Kind Kind
	Err  error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
}

func (e *FetchFailure) Unwrap() error {
	return e.Err
}

// Operation names a mutation.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// MutationFailure reports a failed create, update or delete.
type MutationFailure struct {
	Op   Operation
	Kind Kind
	ID   string
	Err  error
}

func (e *MutationFailure) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Kind, e.ID, e.Err)
}

func (e *MutationFailure) Unwrap() error {
	return e.Err
}

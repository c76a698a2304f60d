package service

import "errors"

// ErrNotFound is the sentinel every NotFoundError matches, so the boundary
// can map any missing-entity failure to 404 with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the detail message surfaced to the caller.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

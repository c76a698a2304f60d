package client

import (
	"errors"
	"fmt"
)

// errEmptyResult marks a 200 response whose list body was empty, which the
// consuming paths treat as a malformed response.
var errEmptyResult = errors.New("empty result list in response")

// RemoteError is a non-success response from a dependent service. Status
// code and detail are carried verbatim so the boundary can pass them
// through unchanged.
type RemoteError struct {
	Service    string
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s responded %d: %s", e.Service, e.StatusCode, e.Detail)
}

// UnavailableError is a transport-level failure reaching a dependent
// service: unreachable host, timeout, or a malformed response body. It is
// never passed through; the boundary surfaces a generic message instead.
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("error communicating with the %s: %v", e.Service, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

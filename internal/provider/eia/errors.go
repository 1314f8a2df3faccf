package eia

import "fmt"

// RemoteError reports a non-success HTTP status from the EIA API.
// Any single RemoteError aborts the whole fetch.
type RemoteError struct {
	Series     string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("fetch %s: API status %d: %s", e.Series, e.StatusCode, e.Body)
}

// MalformedResponseError reports a response body that does not match
// the expected envelope shape.
type MalformedResponseError struct {
	Series string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("fetch %s: malformed response: %v", e.Series, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

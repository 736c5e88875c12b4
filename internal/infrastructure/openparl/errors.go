package openparl

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-OK response from the remote source.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openparl: status %d from %s", e.StatusCode, e.URL)
}

// ErrRetriesExhausted marks a request abandoned after the backoff policy's
// attempt budget ran out.
var ErrRetriesExhausted = errors.New("openparl: retries exhausted")

// IsRateLimited reports whether err is a 429 response.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusTooManyRequests
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

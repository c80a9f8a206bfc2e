// Package fetch defines the remote content fetcher contract consumed by the
// document aggregate, plus the default HTTP+XML implementation
package fetch

// RetryableError wraps a transient failure: the same operation may succeed
// if retried (connection failures, timeouts, HTTP 5xx).
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "fetch: retryable: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NonRetryableError wraps a permanent failure that retrying cannot fix
// (invalid URL, HTTP 4xx, unparseable content).
type NonRetryableError struct {
	Err error
}

func (e *NonRetryableError) Error() string {
	return "fetch: non-retryable: " + e.Err.Error()
}

func (e *NonRetryableError) Unwrap() error {
	return e.Err
}

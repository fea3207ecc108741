package publish

import "errors"

var (
	// ErrUnavailable indicates the endpoint could not be reached.
	ErrUnavailable = errors.New("publish endpoint unavailable")

	// ErrTimeout indicates the POST exceeded the configured timeout.
	ErrTimeout = errors.New("publish request timed out")

	// ErrRejected indicates the endpoint answered with a non-2xx status.
	ErrRejected = errors.New("publish request rejected")
)

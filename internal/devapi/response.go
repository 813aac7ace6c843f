package devapi

import "errors"

// Response is the uniform envelope every DevApi call resolves to: either
// Success is true and Data carries the payload, or Success is false and Error
// carries a best-effort message. Transport failures, non-2xx statuses and
// malformed payloads all collapse into the failure variant; callers never see
// a panic or a raw transport error.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// failure builds the failure variant with a zero Data value.
func failure[T any](msg string) Response[T] {
	if msg == "" {
		msg = "Request failed"
	}
	return Response[T]{Success: false, Error: msg}
}

// ErrorMessage returns the most specific message available on a failed
// response, falling back to a generic one.
func (r Response[T]) ErrorMessage() string {
	switch {
	case r.Error != "":
		return r.Error
	case r.Message != "":
		return r.Message
	default:
		return "Request failed"
	}
}

// Err converts a failed response into an error, for call sites that compose
// with errgroup or the stdlib error chain. Successful responses yield nil.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	return errors.New(r.ErrorMessage())
}

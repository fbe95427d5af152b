package report

import (
	"fmt"
	"time"
)

// Request is a resolved, ready-to-send action request.
type Request struct {
	Path    string
	Method  string
	Params  map[string]string
	Headers map[string]string
	Timeout time.Duration // 0 means the client default
}

// Result is a successful API response. Payload holds the decoded JSON
// value, or the body string for non-JSON responses.
type Result struct {
	Payload any
	Raw     []byte
	Status  int
	URL     string
	Params  map[string]string
}

// Error types

// TimeoutError indicates the request did not settle before its timer.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s: %s", e.Timeout, e.URL)
}

// StatusError indicates a non-2xx response.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Detail)
}

// DecodeError indicates a body declared as JSON that failed to parse.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON response from %s: %v", e.URL, e.Err)
}

// UploadError indicates a failed file upload.
type UploadError struct {
	Status int
	Detail string
}

func (e *UploadError) Error() string {
	if e.Status == 0 {
		return "upload failed: " + e.Detail
	}
	return fmt.Sprintf("upload failed (%d): %s", e.Status, e.Detail)
}

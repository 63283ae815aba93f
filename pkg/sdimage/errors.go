package sdimage

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the synthesis request exceeded the hard deadline and
// the in-flight request was cancelled.
var ErrTimeout = errors.New("image generation timed out")

// ErrNoImages indicates the backend answered 200 with an empty image list.
var ErrNoImages = errors.New("no images in response")

// APIError carries the backend's non-success status and response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("image API error %d: %s", e.StatusCode, e.Body)
}

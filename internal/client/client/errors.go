package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/notevault/internal/common"
)

var (
	// ErrSessionExpired is returned when a 401 could not be cured by a token
	// refresh. The session has been cleared by the time it is returned.
	ErrSessionExpired = errors.New("session expired")
	ErrUnauthorized   = common.ErrorUnauthorized
	ErrUnavailable    = errors.New("server unavailable")
)

// RequestError is a non-2xx answer from the API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// Is lets callers match 401/403 answers against ErrUnauthorized.
func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// NetworkError wraps a transport failure: the request never got an answer.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }

// Is makes every NetworkError match ErrUnavailable.
func (e *NetworkError) Is(target error) bool { return target == ErrUnavailable }

// UserMessage returns the text to show for err: the server message for a
// RequestError, a generic line otherwise.
func UserMessage(err error, fallback string) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	if errors.Is(err, ErrSessionExpired) {
		return "Your session has expired. Please log in again."
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "Network error. Please try again."
	}
	return fallback
}

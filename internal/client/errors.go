package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the sensor API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("sensorapi: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFoundError reports whether err is a 404 from the API.
func IsNotFoundError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

// IsServerError reports whether err is a 5xx from the API.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode >= 500
}

// IsRetryable reports whether a request that failed with err may succeed
// when repeated: transport failures, 429 and 5xx responses.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func errorFromResponse(status int, body []byte) *Error {
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return &Error{StatusCode: status, Message: errResp.Error}
	}

	message := http.StatusText(status)
	if message == "" {
		message = "unknown error"
	}
	return &Error{StatusCode: status, Message: message}
}

package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GenericErrorMessage is reported when an error response body cannot be read.
const GenericErrorMessage = "請求失敗"

var (
	// ErrTransport wraps failures that happen before an HTTP status is known.
	ErrTransport = errors.New("api transport error")
	// ErrDecode wraps 2xx responses whose body does not match the expected shape.
	ErrDecode = errors.New("api response decode error")
)

// APIError represents a non-2xx response from the adoption API.
type APIError struct {
	StatusCode int
	Detail     string
	Traceback  string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody is the error envelope of the backend. detail is usually a string
// but validation failures send a list, so it is kept raw.
type errorBody struct {
	Detail    json.RawMessage `json:"detail"`
	Traceback string          `json:"traceback"`
}

// newAPIError builds the user-facing message from an error response:
// detail, else "HTTP <status>", plus the traceback when one is supplied.
// A body that is not JSON yields the generic message.
func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Detail = GenericErrorMessage
		apiErr.Message = GenericErrorMessage
		return apiErr
	}

	apiErr.Detail = detailText(body.Detail)
	apiErr.Traceback = strings.TrimSpace(body.Traceback)

	msg := apiErr.Detail
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	if apiErr.Traceback != "" {
		msg += " -- TRACEBACK: " + apiErr.Traceback
	}
	apiErr.Message = msg
	return apiErr
}

func detailText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

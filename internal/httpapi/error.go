package httpapi

import (
	"fmt"
	"net/http"
	"strings"
)

// FieldError is the error item shape the backend returns on rejected
// payloads: an array of {"msg": "..."} objects.
type FieldError struct {
	Msg string `json:"msg"`
}

// APIError carries a non-2xx backend response, with any decoded field
// errors. Errors is empty for failures with no parseable error body.
type APIError struct {
	StatusCode int
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("backend error: %s", http.StatusText(e.StatusCode))
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Msg)
	}
	return fmt.Sprintf("backend error: %s", strings.Join(msgs, "; "))
}

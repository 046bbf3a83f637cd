package cosmic

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// APIError is a non-2xx answer from the Cosmic API.
type APIError struct {
	Status  int
	Message string
}

func newAPIError(status int, body []byte) *APIError {
	message := ""
	if gjson.ValidBytes(body) {
		message = gjson.GetBytes(body, "message").String()
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cosmic api status %d: %s", e.Status, e.Message)
}

// Is matches content.ErrNotFound for 404 answers.
func (e *APIError) Is(target error) bool {
	return target == content.ErrNotFound && e.Status == http.StatusNotFound
}

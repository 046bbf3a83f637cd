// Package errors defines typed dashboard application errors.
package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindUpstream     Kind = "upstream"
)

// Error is a typed dashboard failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// KindOf classifies err. Content client failures are upstream failures unless
// they carry a validation sentinel.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case stderrors.Is(err, content.ErrTitleRequired),
		stderrors.Is(err, content.ErrKindRequired),
		stderrors.Is(err, content.ErrIDRequired):
		return KindInvalidInput
	}
	var fetch *content.FetchFailure
	var mutation *content.MutationFailure
	switch {
	case stderrors.As(err, &fetch), stderrors.As(err, &mutation):
		return KindUpstream
	case stderrors.Is(err, content.ErrNotFound):
		return KindNotFound
	case stderrors.Is(err, context.DeadlineExceeded):
		return KindUpstream
	default:
		return KindUnknown
	}
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

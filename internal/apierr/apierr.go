// Package apierr defines the error taxonomy shared by the store, the DAO layer,
// the dispatcher and the HTTP transport.
//
// Every error is a *goerrors.Error carrying a category and a text code, so
// callers can tell "bad input" apart from "absent record" without looking at
// the message.
package apierr

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// CallerSeverity is the severity of every 400-class error: the request was
// wrong, the service was not.
const CallerSeverity = goerrors.SeverityWarning

// Text codes attached to every error produced by this module.
const (
	CodeMalformedInput   = "MALFORMED_INPUT"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeRecordNotFound   = "RECORD_NOT_FOUND"
	CodeRouteConflict    = "ROUTE_CONFLICT"
	CodeInternal         = "INTERNAL"
)

// MalformedInput reports a body or parameter that could not be parsed.
func MalformedInput(message string, source error) *goerrors.Error {
	var err *goerrors.Error
	if source != nil {
		err = goerrors.Wrap(source, goerrors.CategoryBadInput, message)
	} else {
		err = goerrors.New(message, goerrors.CategoryBadInput)
	}
	return err.WithCode(http.StatusBadRequest).
		WithTextCode(CodeMalformedInput).
		WithSeverity(CallerSeverity)
}

// MissingParameter reports a required dispatch parameter absent from path and body.
func MissingParameter(message, param string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(CodeMissingParameter).
		WithSeverity(CallerSeverity).
		WithMetadata(map[string]any{"parameter": param})
}

// RouteNotFound reports that no registered route matched the method and path.
func RouteNotFound(method, path string) *goerrors.Error {
	return goerrors.New(fmt.Sprintf("route not found: %s %s", method, path), goerrors.CategoryRouting).
		WithCode(http.StatusNotFound).
		WithTextCode(CodeRouteNotFound).
		WithMetadata(map[string]any{"method": method, "path": path})
}

// RecordNotFound reports a valid route whose identifier is absent from the store.
func RecordNotFound(kind, id string) *goerrors.Error {
	return goerrors.New(fmt.Sprintf("%s %q not found", kind, id), goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(CodeRecordNotFound).
		WithMetadata(map[string]any{"kind": kind, "id": id})
}

// RouteConflict reports a second registration for the same pattern and method.
func RouteConflict(method, pattern string) *goerrors.Error {
	return goerrors.New(fmt.Sprintf("route already registered: %s %s", method, pattern), goerrors.CategoryConflict).
		WithCode(http.StatusInternalServerError).
		WithTextCode(CodeRouteConflict)
}

// Internal reports an unexpected failure.
func Internal(message string, source error) *goerrors.Error {
	var err *goerrors.Error
	if source != nil {
		err = goerrors.Wrap(source, goerrors.CategoryInternal, message)
	} else {
		err = goerrors.New(message, goerrors.CategoryInternal)
	}
	return err.WithCode(http.StatusInternalServerError).WithTextCode(CodeInternal)
}

// Validation converts a field validation failure into a tagged error. Ozzo
// validation errors keep one FieldError per offending field.
func Validation(source error, message string) *goerrors.Error {
	if source == nil {
		return nil
	}
	var existing *goerrors.Error
	if goerrors.As(source, &existing) && existing.Category == goerrors.CategoryValidation {
		return existing.WithCode(http.StatusBadRequest).
			WithTextCode(CodeValidationFailed).
			WithSeverity(CallerSeverity)
	}
	return goerrors.FromOzzoValidation(source, message).
		WithCode(http.StatusBadRequest).
		WithTextCode(CodeValidationFailed).
		WithSeverity(CallerSeverity)
}

// HasCode reports whether err is a tagged error with the given text code.
func HasCode(err error, code string) bool {
	var e *goerrors.Error
	if !goerrors.As(err, &e) {
		return false
	}
	return e.TextCode == code
}

// IsNotFound reports whether err is a RecordNotFound or RouteNotFound.
func IsNotFound(err error) bool {
	return HasCode(err, CodeRecordNotFound) || HasCode(err, CodeRouteNotFound)
}

// IsBadRequest reports whether err is caller error.
func IsBadRequest(err error) bool {
	return HasCode(err, CodeMalformedInput) ||
		HasCode(err, CodeMissingParameter) ||
		HasCode(err, CodeValidationFailed)
}

// HTTPStatus maps err onto the status code the transport should send.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsBadRequest(err), goerrors.IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// From returns err as a tagged error, wrapping foreign errors as Internal.
func From(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var e *goerrors.Error
	if goerrors.As(err, &e) {
		return e
	}
	return Internal("unexpected failure", err)
}

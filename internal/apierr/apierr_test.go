package apierr

import (
	"errors"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"malformed", MalformedInput("bad json", errors.New("eof")), http.StatusBadRequest},
		{"missing parameter", MissingParameter("request body required", "data"), http.StatusBadRequest},
		{"route not found", RouteNotFound("GET", "/api/nope"), http.StatusNotFound},
		{"record not found", RecordNotFound("client", "42"), http.StatusNotFound},
		{"conflict", RouteConflict("GET", "/api/clients"), http.StatusInternalServerError},
		{"foreign", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidationKeepsFieldErrors(t *testing.T) {
	rules := validation.Map(
		validation.Key("clientName", validation.Required),
	).AllowExtraKeys()

	src := validation.Validate(map[string]any{"clientId": "1"}, rules)
	if src == nil {
		t.Fatal("expected ozzo validation error")
	}

	err := Validation(src, "invalid client")
	if !HasCode(err, CodeValidationFailed) {
		t.Fatalf("expected %s text code, got %v", CodeValidationFailed, err)
	}
	if HTTPStatus(err) != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", HTTPStatus(err))
	}

	fields, ok := goerrors.GetValidationErrors(err)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error, got %v", fields)
	}
	if fields[0].Field != "clientName" {
		t.Errorf("expected field clientName, got %q", fields[0].Field)
	}
}

func TestCallerErrorsShareSeverity(t *testing.T) {
	src := validation.Validate(map[string]any{}, validation.Map(validation.Key("clientName", validation.Required)))

	tests := []struct {
		name string
		err  *goerrors.Error
	}{
		{"malformed", MalformedInput("bad json", errors.New("eof"))},
		{"malformed without source", MalformedInput("body must be an object", nil)},
		{"missing parameter", MissingParameter("request body required", "data")},
		{"validation", Validation(src, "invalid client")},
		{"validation rewrapped", Validation(Validation(src, "invalid client"), "invalid client")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Severity != CallerSeverity {
				t.Errorf("severity = %s, want %s", tt.err.Severity, CallerSeverity)
			}
		})
	}

	if got := Internal("boom", nil).Severity; got != goerrors.SeverityError {
		t.Errorf("internal severity = %s, want %s", got, goerrors.SeverityError)
	}
}

func TestFromWrapsForeignErrors(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	wrapped := From(errors.New("disk on fire"))
	if wrapped.TextCode != CodeInternal {
		t.Errorf("expected internal text code, got %q", wrapped.TextCode)
	}

	original := RecordNotFound("org", "ORG9")
	if From(original) != original {
		t.Error("expected tagged error to pass through unchanged")
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFound(RecordNotFound("tpp", "TPP9")) {
		t.Error("record not found should be not-found")
	}
	if IsBadRequest(RecordNotFound("tpp", "TPP9")) {
		t.Error("record not found should not be a bad request")
	}
	if !IsBadRequest(MissingParameter("clientIds required in request body", "clientIds")) {
		t.Error("missing parameter should be a bad request")
	}
}

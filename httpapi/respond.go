package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mock-backend/internal/apierr"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError sends {"error": {...}} with the status derived from err.
func writeError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, requestID string, err error) int {
	status := apierr.HTTPStatus(err)

	tagged := apierr.From(err).Clone()
	tagged.RequestID = requestID
	tagged.Location = nil

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	attrs := append(goerrors.ToSlogAttributes(tagged), slog.String("error", tagged.Message))
	logger.LogAttrs(ctx, level, "request failed", attrs...)

	writeJSON(w, status, tagged.ToErrorResponse(false, nil))
	return status
}

// Package respond writes JSON responses and maps storage and validation
// errors onto HTTP status codes without leaking driver details.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogful/internal/domain/entity"
	"blogful/internal/observability/logging"
	"blogful/internal/repository"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Status maps err onto an HTTP status code.
func Status(err error) int {
	var (
		verr     *entity.ValidationError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &verr), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, repository.ErrConnectionFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Failure writes the response for err. Client errors carry their message;
// storage errors are logged and replaced by a generic one.
func Failure(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	code := Status(err)
	var msg string
	switch code {
	case http.StatusBadRequest, http.StatusNotFound:
		msg = err.Error()
	case http.StatusRequestEntityTooLarge:
		msg = "request body too large"
	case http.StatusConflict:
		msg = "constraint violation"
	case http.StatusServiceUnavailable:
		msg = "storage unavailable"
	default:
		msg = "internal server error"
	}

	if code >= http.StatusInternalServerError || code == http.StatusConflict {
		logging.FromContext(r.Context()).Error("request failed",
			slog.String("status", http.StatusText(code)),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	}
	JSON(w, code, map[string]string{"error": msg})
}

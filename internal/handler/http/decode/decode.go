// Package decode reads JSON request bodies for the resource handlers.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blogful/internal/domain/entity"
)

// JSON decodes the request body into dst. Unknown fields, trailing data and
// malformed JSON are reported as entity.ErrInvalidInput. An oversized body
// keeps its *http.MaxBytesError.
func JSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body: %w", entity.ErrInvalidInput)
		}
		return fmt.Errorf("%s: %w", strings.TrimPrefix(err.Error(), "json: "), entity.ErrInvalidInput)
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after JSON object: %w", entity.ErrInvalidInput)
	}
	return nil
}

// Time parses an RFC 3339 timestamp supplied for field.
func Time(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, &entity.ValidationError{
			Field:   field,
			Message: "must be in RFC3339 format",
			Err:     entity.ErrInvalidInput,
		}
	}
	return t.UTC(), nil
}

package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantID    int64
		wantError error
	}{
		{name: "valid", input: "123", wantID: 123},
		{name: "surrounding space", input: " 5 ", wantID: 5},
		{name: "not a number", input: "abc", wantError: ErrInvalidID},
		{name: "zero", input: "0", wantError: ErrInvalidID},
		{name: "negative", input: "-5", wantError: ErrInvalidID},
		{name: "empty", input: "", wantError: ErrInvalidID},
		{name: "overflow", input: "99999999999999999999", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if !errors.Is(err, tt.wantError) {
				t.Errorf("ParseID() error = %v, want %v", err, tt.wantError)
			}
			if id != tt.wantID {
				t.Errorf("ParseID() = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	var got int64
	var gotErr error
	mux := http.NewServeMux()
	mux.HandleFunc("GET /articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathID(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/42", nil))
	if gotErr != nil || got != 42 {
		t.Errorf("PathID() = (%d, %v), want (42, nil)", got, gotErr)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/x", nil))
	if !errors.Is(gotErr, ErrInvalidID) {
		t.Errorf("PathID() error = %v, want ErrInvalidID", gotErr)
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("BLOGFUL_TEST_STRING", "")
	assert.Equal(t, "fallback", GetEnvString("BLOGFUL_TEST_STRING", "fallback"))

	t.Setenv("BLOGFUL_TEST_STRING", "value")
	assert.Equal(t, "value", GetEnvString("BLOGFUL_TEST_STRING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 25},
		{"valid", "50", 50},
		{"padded", " 7 ", 7},
		{"negative", "-3", -3},
		{"non-numeric", "many", 25},
		{"trailing garbage", "10x", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGFUL_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("BLOGFUL_TEST_INT", 25))
		})
	}
}

func TestGetEnvPositiveInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "4", 4},
		{"zero", "0", 10},
		{"negative", "-10", 10},
		{"invalid", "x", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGFUL_TEST_POS", tt.value)
			assert.Equal(t, tt.want, GetEnvPositiveInt("BLOGFUL_TEST_POS", 10))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"true", false, true},
		{"1", false, true},
		{"FALSE", true, false},
		{"yes", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BLOGFUL_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("BLOGFUL_TEST_BOOL", tt.def))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", time.Hour},
		{"valid", "30m", 30 * time.Minute},
		{"invalid", "soon", time.Hour},
		{"zero", "0s", time.Hour},
		{"negative", "-5s", time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGFUL_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, GetEnvDuration("BLOGFUL_TEST_DURATION", time.Hour))
		})
	}
}

func TestGetEnvOneOf(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"unset", "", "pgx"},
		{"allowed", "sqlite", "sqlite"},
		{"case folded", "SQLite", "sqlite"},
		{"not allowed", "mysql", "pgx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGFUL_TEST_ONEOF", tt.value)
			assert.Equal(t, tt.want, GetEnvOneOf("BLOGFUL_TEST_ONEOF", "pgx", "pgx", "sqlite"))
		})
	}
}

package trifract

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := invalidConfig("k", "factor must be in (0, 1), got %v", 1.5)
	if want := `INVALID_CONFIG: "k" incorrect: factor must be in (0, 1), got 1.5`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("disk full")
	werr := wrapError(ErrCodePersist, cause, "cannot write %s", "t.png")
	if want := "PERSIST_FAILURE: cannot write t.png: disk full"; werr.Error() != want {
		t.Errorf("Error() = %q, want %q", werr.Error(), want)
	}
	if !errors.Is(werr, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", invalidConfig("n", "x"), ErrCodeInvalidConfig, true},
		{"non-matching code", invalidConfig("n", "x"), ErrCodePersist, false},
		{"wrapped", fmt.Errorf("outer: %w", wrapError(ErrCodePersist, nil, "x")), ErrCodePersist, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFieldOf(t *testing.T) {
	if got := FieldOf(invalidConfig("name", "empty")); got != "name" {
		t.Errorf("FieldOf() = %q, want name", got)
	}
	if got := FieldOf(&Error{Code: ErrCodePersist, Field: "ignored"}); got != "" {
		t.Errorf("FieldOf() = %q, want empty for persist errors", got)
	}
	if got := FieldOf(nil); got != "" {
		t.Errorf("FieldOf(nil) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"invalid config", invalidConfig("w", "width must be positive, got %d", -5), `"w" incorrect: width must be positive, got -5`},
		{"with cause", wrapError(ErrCodePersist, errors.New("denied"), "cannot write x.png"), "cannot write x.png: denied"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

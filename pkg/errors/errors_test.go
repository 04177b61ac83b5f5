package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeScope, "cluster %q is closed", "backend")

	if err.Code != ErrCodeScope {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeScope)
	}
	if err.Message != `cluster "backend" is closed` {
		t.Errorf("Message = %v, want %v", err.Message, `cluster "backend" is closed`)
	}

	expected := `SCOPE_VIOLATION: cluster "backend" is closed`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("dot: syntax error")
	err := Wrap(ErrCodeRenderBackend, cause, "layout failed")

	if err.Code != ErrCodeRenderBackend {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeRenderBackend)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "RENDER_BACKEND: layout failed: dot: syntax error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeUnknownEndpoint, "test"),
			code:     ErrCodeUnknownEndpoint,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeUnknownEndpoint, "test"),
			code:     ErrCodeScope,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRenderBackend, New(ErrCodeScope, "inner"), "outer"),
			code:     ErrCodeRenderBackend,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeScope,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeScope,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidFormat, "bad format")); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidFormat)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeFileNotFound, "manifest not found: %s", "web.yaml")
	if got := UserMessage(err); got != "manifest not found: web.yaml" {
		t.Errorf("UserMessage() = %v, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %v, want %v", got, "plain error")
	}
}

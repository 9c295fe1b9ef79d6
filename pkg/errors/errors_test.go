package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeEncodeFailed, cause, "ffmpeg failed")

	if err.Code != ErrCodeEncodeFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEncodeFailed)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestWrapFile(t *testing.T) {
	missing := fmt.Errorf("open x.json: %w", fs.ErrNotExist)
	if got := WrapFile(ErrCodeInvalidGraph, missing, "x.json"); got.Code != ErrCodeFileNotFound {
		t.Errorf("missing file code = %v, want %v", got.Code, ErrCodeFileNotFound)
	}

	bad := errors.New("decode: unexpected EOF")
	if got := WrapFile(ErrCodeInvalidGraph, bad, "x.json"); got.Code != ErrCodeInvalidGraph {
		t.Errorf("decode error code = %v, want %v", got.Code, ErrCodeInvalidGraph)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"different code", New(ErrCodeInvalidInput, "test"), ErrCodeRenderFailed, false},
		{"wrapped in fmt", fmt.Errorf("ctx: %w", New(ErrCodeInvalidLayout, "bad")), ErrCodeInvalidLayout, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
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
	if got := GetCode(New(ErrCodeUnsupported, "x")); got != ErrCodeUnsupported {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeUnsupported)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodeInvalidInput, "height must be positive"), "height must be positive"},
		{"with cause", Wrap(ErrCodeRenderFailed, errors.New("disk full"), "frame 3"), "frame 3: disk full"},
		{"plain", errors.New("plain error"), "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidGraph,
		ErrCodeInvalidLayout,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeRenderFailed,
		ErrCodeEncodeFailed,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

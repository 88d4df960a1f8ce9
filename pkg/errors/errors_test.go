package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error")
	if err == nil {
		t.Fatal("New() returned nil")
	}

	if !strings.Contains(err.Error(), "test error") {
		t.Errorf("Expected error message to contain 'test error', got: %s", err.Error())
	}

	if err.Location() == "" {
		t.Error("Location should not be empty")
	}
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")
	err := Wrap(baseErr, "wrapped")

	if err == nil {
		t.Fatal("Wrap() returned nil")
	}

	if !strings.Contains(err.Error(), "wrapped") {
		t.Errorf("Expected error message to contain 'wrapped', got: %s", err.Error())
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != baseErr {
		t.Errorf("Unwrap() returned wrong error: %v", unwrapped)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "message") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWithField(t *testing.T) {
	err := New("test error").WithField("key", "value")

	fields := err.GetFields()
	if len(fields) != 1 {
		t.Fatalf("Expected 1 field, got %d", len(fields))
	}

	if fields["key"] != "value" {
		t.Errorf("Expected field['key'] = 'value', got: %v", fields["key"])
	}
}

func TestInsufficientDataSentinel(t *testing.T) {
	err := NewInsufficientData("session-42")

	if !errors.Is(err, ErrInsufficientData) {
		t.Error("expected errors.Is(err, ErrInsufficientData) to hold")
	}

	if err.GetFields()["session_id"] != "session-42" {
		t.Errorf("expected session_id field, got: %v", err.GetFields())
	}

	if GetErrorCode(err) != "INSUFFICIENT_DATA" {
		t.Errorf("unexpected code: %s", GetErrorCode(err))
	}
}

func TestMissingVerbalScoreSentinel(t *testing.T) {
	err := NewMissingVerbalScore("scoring service timeout")

	if !errors.Is(err, ErrMissingVerbalScore) {
		t.Error("expected errors.Is(err, ErrMissingVerbalScore) to hold")
	}

	if !strings.Contains(err.Error(), "scoring service timeout") {
		t.Errorf("expected details in message, got: %s", err.Error())
	}
}

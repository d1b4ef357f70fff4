package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseException(t *testing.T) {
	tests := []struct {
		in   string
		code int
		text string
	}{
		{"0037E|Unknown resolved entity value '-4'", 37, "Unknown resolved entity value '-4'"},
		{"30121E|JSON Parsing Failure", 30121, "JSON Parsing Failure"},
		{"0002W|warning", 2, "warning"},
		{"no code here", 0, "no code here"},
		{"abcE|not numeric", 0, "abcE|not numeric"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		code, text := ParseException(tt.in)
		if code != tt.code || text != tt.text {
			t.Errorf("ParseException(%q) = (%d, %q), want (%d, %q)", tt.in, code, text, tt.code, tt.text)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code     int
		reason   Reason
		category Category
	}{
		{37, ReasonNotFound, CategoryBadInput},
		{7344, ReasonNotFound, CategoryBadInput},
		{1007, ReasonDatabaseConnectionLost, CategoryRetryable},
		{30121, ReasonMalformedJSON, CategoryBadInput},
		{9000, ReasonLicense, CategoryUnrecoverable},
		{48, ReasonNotInitialized, CategoryUnrecoverable},
		{123456, ReasonUnknown, CategoryUnknown},
	}
	for _, tt := range tests {
		reason, category := Classify(tt.code)
		if reason != tt.reason || category != tt.category {
			t.Errorf("Classify(%d) = (%s, %s), want (%s, %s)", tt.code, reason, category, tt.reason, tt.category)
		}
	}
}

func TestEngineError(t *testing.T) {
	err := NewEngineError("G2_getEntityByEntityID", -2, 0, "0037E|Unknown resolved entity value '-4'")

	if err.Component != "G2" {
		t.Errorf("Component = %q, want G2", err.Component)
	}
	if err.Code != 37 || err.ReturnCode != -2 {
		t.Errorf("Code = %d ReturnCode = %d", err.Code, err.ReturnCode)
	}

	msg := err.Error()
	for _, s := range []string{"[engine]", "G2_getEntityByEntityID", "returned -2", "0037 not_found", "Unknown resolved entity"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}

	wrapped := fmt.Errorf("lookup: %w", err)
	if !errors.Is(wrapped, ErrBadInput) {
		t.Error("expected ErrBadInput to match")
	}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("expected ErrNotFound to match")
	}
	if errors.Is(wrapped, ErrRetryable) {
		t.Error("ErrRetryable should not match")
	}
	if err.Retryable() {
		t.Error("not-found is not retryable")
	}

	var ee *EngineError
	if !errors.As(wrapped, &ee) || ee.Symbol != "G2_getEntityByEntityID" {
		t.Error("errors.As should recover the engine error")
	}
}

func TestEngineError_ExplicitCodeWins(t *testing.T) {
	err := NewEngineError("G2Diagnostic_getDBInfo", -1, 1007, "lost connection")
	if err.Code != 1007 {
		t.Errorf("Code = %d, want 1007", err.Code)
	}
	if err.Message != "lost connection" {
		t.Errorf("Message = %q", err.Message)
	}
	if !errors.Is(err, ErrDatabaseConnectionLost) || !err.Retryable() {
		t.Error("expected retryable database connection lost")
	}
	if err.Component != "G2Diagnostic" {
		t.Errorf("Component = %q", err.Component)
	}
}

func TestEngineError_IsSameSymbolAndCode(t *testing.T) {
	a := NewEngineError("G2_stats", -1, 2, "")
	b := NewEngineError("G2_stats", -3, 2, "different text")
	c := NewEngineError("G2_stats", -1, 7, "")

	if !errors.Is(a, b) {
		t.Error("same symbol and code should match")
	}
	if errors.Is(a, c) {
		t.Error("different codes should not match")
	}
}

package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseLower,
				Kind:     KindTypeMismatch,
				Path:     []string{"G2_getEntityByEntityID", "0"},
				GoType:   "string",
				WantType: "int64",
				Detail:   "cannot convert",
			},
			contains: []string{"[lower]", "type_mismatch", "G2_getEntityByEntityID.0", "string", "int64", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLift,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[lift]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseInvoke,
				Kind:   KindAllocation,
				Detail: "guest memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[invoke]", "allocation", "guest memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseHandle,
		Kind:  KindOverflow,
		Path:  []string{"handle"},
	}

	if !err.Is(&Error{Phase: PhaseHandle, Kind: KindOverflow}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseLower, Kind: KindOverflow}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseHandle, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseHandle, Kind: KindOverflow}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLower, KindTypeMismatch).
		Path("G2_stats", "1").
		GoType("string").
		WantType("int32").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "int32", "string").
		Build()

	if err.Phase != PhaseLower {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLower)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "G2_stats" || err.Path[1] != "1" {
		t.Errorf("Path = %v, want [G2_stats 1]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.WantType != "int32" {
		t.Errorf("WantType = %v, want 'int32'", err.WantType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected int32, got string" {
		t.Errorf("Detail = %v, want 'expected int32, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseLower, []string{"arg"}, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.WantType != "string" {
			t.Errorf("GoType=%v WantType=%v", err.GoType, err.WantType)
		}
	})

	t.Run("Arity", func(t *testing.T) {
		err := Arity(PhaseLower, "G2_addRecord", 3, 4)
		if err.Kind != KindArity {
			t.Errorf("Kind = %v, want %v", err.Kind, KindArity)
		}
		if !strings.Contains(err.Error(), "got 3 arguments, want 4") {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("AllocationFailed", func(t *testing.T) {
		err := AllocationFailed(PhaseLower, 1024, 8)
		if err.Kind != KindAllocation {
			t.Errorf("Kind = %v, want %v", err.Kind, KindAllocation)
		}
		if !strings.Contains(err.Detail, "1024") {
			t.Errorf("Detail = %v, should contain size", err.Detail)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseLift, []string{"response"}, 70000, 16)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != uint32(70000) {
			t.Errorf("Value = %v, want 70000", err.Value)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseHandle, []string{"handle"}, uint64(1<<40), "u32")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if err.Value != uint64(1<<40) {
			t.Errorf("Value = %v, want 1<<40", err.Value)
		}
	})

	t.Run("Trap", func(t *testing.T) {
		cause := errors.New("unreachable")
		err := Trap("G2_stats", cause)
		if err.Kind != KindTrap || err.Phase != PhaseInvoke {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("Trap should wrap its cause")
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized(PhaseInvoke, "engine library")
		if err.Detail != "engine library not initialized" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})
}

func TestMissingExportsError(t *testing.T) {
	t.Run("single export", func(t *testing.T) {
		err := NewMissingExportsError([]string{"G2Diagnostic_getDBInfo"})
		if len(err.Exports) != 1 {
			t.Fatalf("expected 1 export, got %d", len(err.Exports))
		}
		if err.Exports[0].Component != "G2Diagnostic" {
			t.Errorf("component = %q, want G2Diagnostic", err.Exports[0].Component)
		}
		if err.Exports[0].Symbol != "G2Diagnostic_getDBInfo" {
			t.Errorf("symbol = %q", err.Exports[0].Symbol)
		}
	})

	t.Run("grouped by component", func(t *testing.T) {
		err := NewMissingExportsError([]string{
			"G2_stats",
			"G2Product_license",
			"G2_fetchNext",
		})
		msg := err.Error()
		if !strings.Contains(msg, "missing 3 entry point(s)") {
			t.Errorf("error should contain count, got: %s", msg)
		}
		if !strings.Contains(msg, "G2:\n    - G2_stats\n    - G2_fetchNext") {
			t.Errorf("engine symbols should be grouped, got: %s", msg)
		}
		if !strings.Contains(msg, "G2Product:") {
			t.Errorf("error should contain second component, got: %s", msg)
		}
	})

	t.Run("empty", func(t *testing.T) {
		err := NewMissingExportsError(nil)
		if !strings.Contains(err.Error(), "no exports specified") {
			t.Errorf("empty error should have specific message, got: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewMissingExportsError([]string{"G2_stats"})
		if !errors.Is(err, &MissingExportsError{}) {
			t.Error("errors.Is should match MissingExportsError")
		}
	})
}

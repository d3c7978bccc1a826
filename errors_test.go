package mir

import (
	"errors"
	"strings"
	"testing"
)

func TestCompilerErrorFormat(t *testing.T) {
	loc := Location{Function: 7, Name: "main"}
	call := Call(CTLam([]*Variable{Var(1, "a")}, Var(1, "a")))
	err := ArityMismatchError(loc, call, 1, 0)

	if got := err.Error(); got != "main#7: compile-time lambda takes 1 argument(s) but was called with 0 [arity-mismatch]" {
		t.Errorf("Unexpected error string %q", got)
	}

	formatted := err.Format(false)
	for _, want := range []string{
		"fatal error: compile-time lambda takes 1 argument(s)",
		"--> main#7",
		"| (ct (a#1) -> a#1)()",
		"= invariant: arity-mismatch",
		"note: This is an internal compiler error.",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Expected %q in:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Expected no color codes")
	}
	if !strings.Contains(err.Format(true), "\033[1;31m") {
		t.Error("Expected color codes")
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{Function: 3}).String(); got != "fn#3" {
		t.Errorf("Expected fn#3, got %s", got)
	}
}

func TestCompileTimeCalleeLevel(t *testing.T) {
	call := CTCall(&Extern{Name: "f"})
	if w := CompileTimeCalleeError(Location{}, call, false); w.Level != LevelWarning || w.Category != CategorySemantic {
		t.Errorf("Expected a semantic warning, got %s/%s", w.Level, w.Category)
	}
	if e := CompileTimeCalleeError(Location{}, call, true); e.Level != LevelFatal || e.Category != CategoryInternal {
		t.Errorf("Expected a fatal internal error, got %s/%s", e.Level, e.Category)
	}
}

func TestErrorCollector(t *testing.T) {
	ec := NewErrorCollector()
	if ec.Err() != nil {
		t.Fatal("Expected no error from an empty collector")
	}

	ec.AddError(EffectAfterCPSError(Location{Function: 1}, &Effect{ID: 2, Name: "E"}))
	ec.AddError(CompileTimeCalleeError(Location{Function: 1}, CTCall(&Extern{Name: "f"}), false))
	ec.AddWarning(InlineDepthError(Location{Function: 2}, Unit(), 10))

	if ec.ErrorCount() != 1 || ec.WarningCount() != 2 {
		t.Fatalf("Expected 1 error and 2 warnings, got %d and %d", ec.ErrorCount(), ec.WarningCount())
	}
	if !ec.HasErrors() {
		t.Error("Expected HasErrors to be true")
	}
	if !strings.Contains(ec.Report(false), "1 error(s), 2 warning(s) found") {
		t.Errorf("Unexpected report:\n%s", ec.Report(false))
	}

	var ce CompilerError
	if err := ec.Err(); !errors.As(err, &ce) || ce.Invariant != InvEffectAfterCPS {
		t.Errorf("Expected the effect error, got %v", err)
	}
}

func TestIsInternalError(t *testing.T) {
	if IsInternalError(errors.New("plain")) {
		t.Error("Expected a plain error not to be internal")
	}
	if IsInternalError(nil) {
		t.Error("Expected nil not to be internal")
	}
	wrapped := errors.Join(errors.New("context"), NonCallableError(Location{}, Int(1)))
	if !IsInternalError(wrapped) {
		t.Error("Expected a wrapped internal error to be detected")
	}
}

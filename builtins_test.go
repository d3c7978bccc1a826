package mir

import (
	"testing"
)

func TestBuiltinOperandsReducedForEveryOp(t *testing.T) {
	for _, op := range AllBuiltinOps() {
		t.Run(op.String(), func(t *testing.T) {
			var typ Type
			if op.Typed() {
				typ = PrimitiveType{Kind: KindI64}
			}
			params := []*Variable{Var(1, "a"), Var(2, "b")}
			operands := []Atom{Var(1, "a"), Var(2, "b")}[:op.Operands()]
			builtin := &Builtin{Op: op, Args: operands, Type: typ}

			call := Call(CTLam(params, builtin), Int(5), Int(6))
			result := mustEval(t, call, Substitutions{})

			got, ok := result.(*Builtin)
			if !ok {
				t.Fatalf("Expected a builtin, got %T", result)
			}
			if got.Op != op {
				t.Errorf("Expected op %s, got %s", op, got.Op)
			}
			if got.Type != typ {
				t.Errorf("Expected type %v, got %v", typ, got.Type)
			}
			if len(got.Args) != op.Operands() {
				t.Fatalf("Expected %d operands, got %d", op.Operands(), len(got.Args))
			}
			for i, arg := range got.Args {
				want := []string{"5", "6"}[i]
				if arg.String() != want {
					t.Errorf("Expected operand %d to be %s, got %s", i, want, arg)
				}
			}
		})
	}
}

func TestBuiltinCatalog(t *testing.T) {
	ops := AllBuiltinOps()
	if len(ops) != 36 {
		t.Fatalf("Expected 36 builtin operations, got %d", len(ops))
	}
	seen := make(map[string]bool)
	for _, op := range ops {
		name := op.String()
		if seen[name] {
			t.Errorf("Duplicate builtin name %s", name)
		}
		seen[name] = true
		if n := op.Operands(); n < 1 || n > 2 {
			t.Errorf("%s: expected 1 or 2 operands, got %d", name, n)
		}
	}

	tests := []struct {
		op       BuiltinOp
		operands int
		typed    bool
	}{
		{AddInt, 2, false},
		{EqBool, 2, false},
		{SignExtend, 1, true},
		{BitwiseNot, 1, false},
		{StackAlloc, 1, false},
		{Transmute, 1, true},
		{Offset, 2, true},
	}
	for _, tt := range tests {
		if tt.op.Operands() != tt.operands || tt.op.Typed() != tt.typed {
			t.Errorf("%s: expected (%d, %v), got (%d, %v)", tt.op, tt.operands, tt.typed, tt.op.Operands(), tt.op.Typed())
		}
	}
}

func TestMalformedBuiltinIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		builtin *Builtin
	}{
		{"missing operand", &Builtin{Op: AddInt, Args: []Atom{Int(1)}}},
		{"extra operand", &Builtin{Op: BitwiseNot, Args: []Atom{Int(1), Int(2)}}},
		{"missing type", &Builtin{Op: Truncate, Args: []Atom{Int(1)}}},
		{"unknown op", &Builtin{Op: BuiltinOp(99), Args: []Atom{Int(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateAst(tt.builtin, Substitutions{}, nil)
			expectInvariant(t, err, InvBuiltinShape)
		})
	}
}

package mir

import (
	"math"
	"testing"
)

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"negative int", Int(-3), "-3"},
		{"unsigned int", &Literal{Kind: LitInteger, Value: math.MaxUint64, IntKind: KindU64}, "18446744073709551615"},
		{"float", &Literal{Kind: LitFloat, Value: math.Float64bits(1.5)}, "1.5"},
		{"char", &Literal{Kind: LitChar, Value: 'a'}, "'a'"},
		{"cstring", &Literal{Kind: LitCString, Value: 4}, "cstr#4"},
		{"bool", Bool(true), "true"},
		{"unit", Unit(), "()"},
		{"anonymous variable", Var(3, ""), "v#3"},
		{"lambda", Lam([]*Variable{Var(1, "a"), Var(2, "b")}, Var(1, "a")), "((a#1, b#2) -> a#1)"},
		{"compile-time lambda", CTLam(nil, Unit()), "(ct () -> ())"},
		{"compile-time call", CTCall(Var(1, "f"), Int(1)), "ct f#1(1)"},
		{"effect", &Effect{ID: 5, Name: "Fail"}, "effect Fail#5"},
		{"single tuple", &Tuple{Fields: []Atom{Int(1)}}, "(1,)"},
		{"typed builtin", Op(SignExtend, PrimitiveType{KindI64}, Var(1, "a")), "SignExtend(a#1 : i64)"},
		{"offset", Op(Offset, PrimitiveType{KindU8}, Var(1, "p"), Int(4)), "Offset(p#1, 4 : u8)"},
		{"handle", &Handle{Effects: []*Effect{{ID: 5, Name: "Fail"}}, Expression: Unit(), Handler: Unit()}, "(handle () with [effect Fail#5] ())"},
		{"switch", &DecisionSwitch{Discriminant: Var(1, "t"), Cases: []SwitchCase{{Tag: 2, Tree: &DecisionLeaf{Branch: 1}}}}, "switch t#1 { 2 -> leaf 1 }"},
		{"function type", &FunctionType{Params: []Type{PrimitiveType{KindI32}, nil}, Return: &TupleType{Fields: []Type{PrimitiveType{KindBool}}}, CompileTime: true}, "fn(i32, _) => {bool}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestProgramStringIsSorted(t *testing.T) {
	program := NewProgram(
		&Function{ID: 3, Name: "c", Body: Unit()},
		&Function{ID: 1, Name: "a", Body: Int(1)},
		&Function{ID: 2, Name: "b", Body: Bool(false)},
	)
	want := "a#1 = 1\nb#2 = false\nc#3 = ()\n"
	if got := program.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestCloneAst(t *testing.T) {
	original := &Match{
		DecisionTree: &DecisionLet{Variable: Var(1, "a"), Expr: Var(2, "s"), Body: &DecisionLeaf{Branch: 0}},
		Branches:     []Ast{Call(CTLam([]*Variable{Var(3, "x")}, Var(3, "x")), Var(1, "a"))},
	}
	clone := CloneAst(original).(*Match)

	if clone.String() != original.String() {
		t.Errorf("Expected %s, got %s", original, clone)
	}
	if clone.Branches[0] == original.Branches[0] {
		t.Error("Expected branches to be copied")
	}
	if clone.DecisionTree.(*DecisionLet).Variable == original.DecisionTree.(*DecisionLet).Variable {
		t.Error("Expected decision tree bindings to be copied")
	}
}

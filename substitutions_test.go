package mir

import (
	"testing"
)

func TestSubstitutionsArePersistent(t *testing.T) {
	s1 := NewSubstitutions().Extend(1, Int(1))
	s2 := s1.Extend(2, Int(2))
	s3 := s2.Remove(1)
	s4 := s2.Extend(1, Int(100))

	if _, ok := s1.Lookup(2); ok {
		t.Error("Expected extending s1 to leave it unchanged")
	}
	if v, ok := s2.Lookup(1); !ok || v.String() != "1" {
		t.Errorf("Expected removal from s2 to leave it unchanged, got %v", v)
	}
	if _, ok := s3.Lookup(1); ok {
		t.Error("Expected #1 to be removed from s3")
	}
	if v, ok := s3.Lookup(2); !ok || v.String() != "2" {
		t.Errorf("Expected #2 in s3, got %v", v)
	}
	if v, _ := s4.Lookup(1); v.String() != "100" {
		t.Errorf("Expected s4 to rebind #1 to 100, got %v", v)
	}
	if v, _ := s2.Lookup(1); v.String() != "1" {
		t.Errorf("Expected s2 to keep #1 = 1 after rebinding in s4, got %v", v)
	}

	lens := []struct {
		name string
		s    Substitutions
		want int
	}{
		{"s1", s1, 1},
		{"s2", s2, 2},
		{"s3", s3, 1},
		{"s4", s4, 2},
	}
	for _, l := range lens {
		if got := l.s.Len(); got != l.want {
			t.Errorf("%s: expected %d bindings, got %d", l.name, l.want, got)
		}
	}
}

func TestZeroSubstitutions(t *testing.T) {
	var s Substitutions
	if _, ok := s.Lookup(1); ok {
		t.Error("Expected the zero value to be empty")
	}
	if s.Remove(1).Len() != 0 {
		t.Error("Expected removing from the zero value to stay empty")
	}
	if v, ok := s.Extend(1, Unit()).Lookup(1); !ok || v.String() != "()" {
		t.Errorf("Expected the zero value to be extendable, got %v", v)
	}
}

func TestSubstitutionsWithout(t *testing.T) {
	s := NewSubstitutions().Extend(1, Int(1)).Extend(2, Int(2)).Extend(3, Int(3))
	pruned := s.Without([]*Variable{Var(1, "a"), Var(3, "c"), Var(4, "d")})

	if pruned.Len() != 1 {
		t.Fatalf("Expected 1 binding left, got %d", pruned.Len())
	}
	if _, ok := pruned.Lookup(2); !ok {
		t.Error("Expected #2 to survive")
	}
	if s.Len() != 3 {
		t.Errorf("Expected the original to keep 3 bindings, got %d", s.Len())
	}
}

func TestSubstitutionsManyBindings(t *testing.T) {
	s := NewSubstitutions()
	for i := 0; i < 1000; i++ {
		s = s.Extend(DefinitionID(i), Int(int64(i)))
	}
	for i := 0; i < 1000; i += 2 {
		s = s.Remove(DefinitionID(i))
	}
	if s.Len() != 500 {
		t.Fatalf("Expected 500 bindings, got %d", s.Len())
	}
	for i := 1; i < 1000; i += 2 {
		if v, ok := s.Lookup(DefinitionID(i)); !ok || v.(*Literal).Value != uint64(i) {
			t.Fatalf("Expected #%d = %d, got %v", i, i, v)
		}
	}
}

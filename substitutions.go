// Completion: 100% - Persistent substitution environment complete
package mir

import (
	"github.com/benbjohnson/immutable"
)

// Substitutions maps a variable's DefinitionID to the already-reduced atom
// that replaces it. It is persistent: Extend and Remove return a new
// environment and never change the receiver, so sibling branches of the
// evaluation never see each other's bindings.
//
// The zero value is the empty environment.
type Substitutions struct {
	m *immutable.Map[DefinitionID, Atom]
}

type definitionHasher struct{}

func (definitionHasher) Hash(key DefinitionID) uint32 {
	// Fibonacci hashing spreads sequential ids across the trie
	return uint32(key) * 2654435769
}

func (definitionHasher) Equal(a, b DefinitionID) bool {
	return a == b
}

func NewSubstitutions() Substitutions {
	return Substitutions{m: immutable.NewMap[DefinitionID, Atom](definitionHasher{})}
}

func (s Substitutions) Lookup(id DefinitionID) (Atom, bool) {
	if s.m == nil {
		return nil, false
	}
	return s.m.Get(id)
}

// Extend returns s with id bound to value, replacing any previous binding
func (s Substitutions) Extend(id DefinitionID, value Atom) Substitutions {
	if s.m == nil {
		s = NewSubstitutions()
	}
	return Substitutions{m: s.m.Set(id, value)}
}

// Remove returns s without a binding for id
func (s Substitutions) Remove(id DefinitionID) Substitutions {
	if s.m == nil {
		return s
	}
	if _, ok := s.m.Get(id); !ok {
		return s
	}
	return Substitutions{m: s.m.Delete(id)}
}

// Without removes every parameter of a binder
func (s Substitutions) Without(vars []*Variable) Substitutions {
	for _, v := range vars {
		s = s.Remove(v.ID)
	}
	return s
}

func (s Substitutions) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

package mir

import "github.com/samber/lo"

// CloneAtom creates a deep copy of an atom to avoid node sharing.
// Type descriptors are immutable and stay shared.
func CloneAtom(atom Atom) Atom {
	switch a := atom.(type) {
	case *Literal:
		c := *a
		return &c
	case *Variable:
		return cloneVariable(a)
	case *Lambda:
		return &Lambda{
			Params:      lo.Map(a.Params, func(p *Variable, _ int) *Variable { return cloneVariable(p) }),
			Body:        CloneAst(a.Body),
			CompileTime: a.CompileTime,
			Type:        a.Type,
		}
	case *Extern:
		c := *a
		return &c
	case *Effect:
		c := *a
		return &c
	default:
		return atom
	}
}

// CloneAst creates a deep copy of an expression
func CloneAst(ast Ast) Ast {
	switch a := ast.(type) {
	case Atom:
		return CloneAtom(a)
	case *FunctionCall:
		return &FunctionCall{
			Function:    CloneAtom(a.Function),
			Args:        cloneAtoms(a.Args),
			CompileTime: a.CompileTime,
		}
	case *Let:
		return &Let{Variable: cloneVariable(a.Variable), Expr: CloneAst(a.Expr), Body: CloneAst(a.Body)}
	case *If:
		return &If{
			Condition:  CloneAtom(a.Condition),
			Then:       CloneAst(a.Then),
			Otherwise:  CloneAst(a.Otherwise),
			ResultType: a.ResultType,
		}
	case *Match:
		return &Match{
			DecisionTree: cloneDecisionTree(a.DecisionTree),
			Branches:     lo.Map(a.Branches, func(b Ast, _ int) Ast { return CloneAst(b) }),
			ResultType:   a.ResultType,
		}
	case *Return:
		return &Return{Expression: CloneAtom(a.Expression)}
	case *Assignment:
		return &Assignment{LHS: CloneAtom(a.LHS), RHS: CloneAtom(a.RHS)}
	case *MemberAccess:
		return &MemberAccess{LHS: CloneAtom(a.LHS), Index: a.Index, Type: a.Type}
	case *Tuple:
		return &Tuple{Fields: cloneAtoms(a.Fields)}
	case *Builtin:
		return &Builtin{Op: a.Op, Args: cloneAtoms(a.Args), Type: a.Type}
	case *Handle:
		return &Handle{
			Effects:    lo.Map(a.Effects, func(e *Effect, _ int) *Effect { c := *e; return &c }),
			Expression: CloneAst(a.Expression),
			Handler:    CloneAst(a.Handler),
		}
	default:
		return ast
	}
}

func cloneDecisionTree(tree DecisionTree) DecisionTree {
	switch t := tree.(type) {
	case *DecisionLeaf:
		return &DecisionLeaf{Branch: t.Branch}
	case *DecisionLet:
		return &DecisionLet{Variable: cloneVariable(t.Variable), Expr: CloneAst(t.Expr), Body: cloneDecisionTree(t.Body)}
	case *DecisionSwitch:
		c := &DecisionSwitch{
			Discriminant: CloneAtom(t.Discriminant),
			Cases: lo.Map(t.Cases, func(sc SwitchCase, _ int) SwitchCase {
				return SwitchCase{Tag: sc.Tag, Tree: cloneDecisionTree(sc.Tree)}
			}),
		}
		if t.Else != nil {
			c.Else = cloneDecisionTree(t.Else)
		}
		return c
	default:
		return tree
	}
}

func cloneAtoms(atoms []Atom) []Atom {
	return lo.Map(atoms, func(a Atom, _ int) Atom { return CloneAtom(a) })
}

func cloneVariable(v *Variable) *Variable {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

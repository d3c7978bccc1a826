// Completion: 100% - Compile-time call evaluation complete
package mir

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/samber/lo"
)

// evaluate.go - Compile-time evaluation of static calls
//
// Function applications that must run at compile time are removed by
// capture-avoiding beta reduction:
// - a call whose callee reduces to a compile-time lambda is inlined
// - a call site flagged compile-time inlines any lambda callee
// - everything else is rebuilt with reduced children and left for codegen
//
// Internal invariant violations panic with a CompilerError and are turned
// back into an error at the API boundary (EvaluateAst, EvaluateStaticCalls).

type evaluator struct {
	cfg      *Config
	out      io.Writer // verbose output
	loc      Location
	depth    int // nesting of inlined calls
	inlined  int
	warnings []CompilerError
}

func newEvaluator(cfg *Config, loc Location) *evaluator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &evaluator{cfg: cfg, out: cfg.output(), loc: loc}
}

// EvaluateAst reduces the compile-time calls in ast under subst.
// A nil cfg means DefaultConfig().
func EvaluateAst(ast Ast, subst Substitutions, cfg *Config) (result Ast, err error) {
	ev := newEvaluator(cfg, Location{})
	defer ev.recoverInternal(&err)
	return ev.evalAst(ast, subst), nil
}

// recoverInternal converts a CompilerError panic into an error.
// Any other panic is a bug in this package and is re-raised.
func (ev *evaluator) recoverInternal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ce, ok := r.(CompilerError)
	if !ok {
		panic(r)
	}
	if ev.cfg.Verbose {
		fmt.Fprintf(ev.out, "DEBUG: %s", ce.Format(false))
		fmt.Fprintf(ev.out, "DEBUG: Panic stack trace:\n%s", debug.Stack())
	}
	*err = ce
}

func (ev *evaluator) fail(err CompilerError) {
	panic(err)
}

func (ev *evaluator) evalAst(ast Ast, subst Substitutions) Ast {
	switch a := ast.(type) {
	case Atom:
		return ev.evalAtom(a, subst)
	case *FunctionCall:
		return ev.evalCall(a, subst)
	case *Let:
		// The bound value stays a runtime value, so subst is not extended
		return &Let{
			Variable: a.Variable,
			Expr:     ev.evalAst(a.Expr, subst),
			Body:     ev.evalAst(a.Body, subst),
		}
	case *If:
		return &If{
			Condition:  ev.evalAtom(a.Condition, subst),
			Then:       ev.evalAst(a.Then, subst),
			Otherwise:  ev.evalAst(a.Otherwise, subst),
			ResultType: a.ResultType,
		}
	case *Match:
		return ev.evalMatch(a, subst)
	case *Return:
		return &Return{Expression: ev.evalAtom(a.Expression, subst)}
	case *Assignment:
		return &Assignment{
			LHS: ev.evalAtom(a.LHS, subst),
			RHS: ev.evalAtom(a.RHS, subst),
		}
	case *MemberAccess:
		return &MemberAccess{LHS: ev.evalAtom(a.LHS, subst), Index: a.Index, Type: a.Type}
	case *Tuple:
		return &Tuple{Fields: ev.evalAtoms(a.Fields, subst)}
	case *Builtin:
		if reason := a.checkShape(); reason != "" {
			ev.fail(BuiltinShapeError(ev.loc, a, reason))
		}
		return &Builtin{Op: a.Op, Args: ev.evalAtoms(a.Args, subst), Type: a.Type}
	case *Handle:
		ev.fail(HandleAfterCPSError(ev.loc, a))
	}
	ev.fail(UnknownNodeError(ev.loc, ast))
	return nil
}

func (ev *evaluator) evalAtom(atom Atom, subst Substitutions) Atom {
	switch a := atom.(type) {
	case *Literal:
		return a
	case *Variable:
		// The stored value was reduced when it was bound; it is not reduced again
		if value, ok := subst.Lookup(a.ID); ok {
			return CloneAtom(value)
		}
		return a
	case *Lambda:
		// Parameters shadow any outer binding of the same id
		inner := subst.Without(a.Params)
		return &Lambda{
			Params:      a.Params,
			Body:        ev.evalAst(a.Body, inner),
			CompileTime: a.CompileTime,
			Type:        a.Type,
		}
	case *Extern:
		return a
	case *Effect:
		ev.fail(EffectAfterCPSError(ev.loc, a))
	}
	ev.fail(UnknownNodeError(ev.loc, atom))
	return nil
}

func (ev *evaluator) evalAtoms(atoms []Atom, subst Substitutions) []Atom {
	return lo.Map(atoms, func(a Atom, _ int) Atom { return ev.evalAtom(a, subst) })
}

func (ev *evaluator) evalCall(call *FunctionCall, subst Substitutions) Ast {
	function := ev.evalAtom(call.Function, subst)
	args := ev.evalAtoms(call.Args, subst)

	switch f := function.(type) {
	case *Lambda:
		if f.CompileTime || call.CompileTime {
			return ev.inline(call, f, args, subst)
		}
	case *Literal:
		if call.CompileTime {
			ev.fail(NonCallableError(ev.loc, call))
		}
	}

	residual := &FunctionCall{Function: function, Args: args, CompileTime: call.CompileTime}
	if call.CompileTime {
		// The callee is a runtime binding or an extern
		warn := CompileTimeCalleeError(ev.loc, residual, ev.cfg.Strict)
		if ev.cfg.Strict {
			ev.fail(warn)
		}
		ev.warnings = append(ev.warnings, warn)
		if ev.cfg.Verbose {
			fmt.Fprintf(ev.out, "DEBUG: %s: compile-time call left in place: %s\n", ev.loc, residual)
		}
	}
	return residual
}

// inline performs the beta reduction of a compile-time call. The body is
// reduced under the extended environment, then the result is reduced once
// more under the caller's environment to normalize what the first pass
// exposed.
func (ev *evaluator) inline(call *FunctionCall, lambda *Lambda, args []Atom, subst Substitutions) Ast {
	if len(lambda.Params) != len(args) {
		ev.fail(ArityMismatchError(ev.loc, call, len(lambda.Params), len(args)))
	}
	if limit := ev.cfg.MaxInlineDepth; limit > 0 && ev.depth >= limit {
		ev.fail(InlineDepthError(ev.loc, call, limit))
	}
	ev.depth++
	defer func() { ev.depth-- }()

	extended := subst
	for i, param := range lambda.Params {
		extended = extended.Extend(param.ID, args[i])
	}
	ev.inlined++

	result := ev.evalAst(lambda.Body, extended)
	return ev.evalAst(result, subst)
}

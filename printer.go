// Completion: 100% - Printer covers every node
package mir

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

func (l *Literal) String() string {
	switch l.Kind {
	case LitInteger:
		if l.IntKind >= KindU8 && l.IntKind <= KindUsz {
			return strconv.FormatUint(l.Value, 10)
		}
		return strconv.FormatInt(int64(l.Value), 10)
	case LitFloat:
		return strconv.FormatFloat(math.Float64frombits(l.Value), 'g', -1, 64)
	case LitCString:
		return fmt.Sprintf("cstr#%d", l.Value)
	case LitChar:
		return strconv.QuoteRune(rune(l.Value))
	case LitBool:
		if l.Value != 0 {
			return "true"
		}
		return "false"
	case LitUnit:
		return "()"
	default:
		return fmt.Sprintf("<literal %d>", l.Kind)
	}
}

func (v *Variable) String() string {
	name := v.Name
	if name == "" {
		name = "v"
	}
	return name + "#" + strconv.FormatUint(uint64(v.ID), 10)
}

func (l *Lambda) String() string {
	params := lo.Map(l.Params, func(p *Variable, _ int) string { return p.String() })
	prefix := ""
	if l.CompileTime {
		prefix = "ct "
	}
	return "(" + prefix + "(" + strings.Join(params, ", ") + ") -> " + nodeString(l.Body) + ")"
}

func (e *Extern) String() string {
	return "extern " + e.Name
}

func (e *Effect) String() string {
	return "effect " + e.Name + "#" + strconv.FormatUint(uint64(e.ID), 10)
}

func (f *FunctionCall) String() string {
	args := lo.Map(f.Args, func(a Atom, _ int) string { return nodeString(a) })
	prefix := ""
	if f.CompileTime {
		prefix = "ct "
	}
	return prefix + nodeString(f.Function) + "(" + strings.Join(args, ", ") + ")"
}

func (l *Let) String() string {
	return "(let " + nodeString(l.Variable) + " = " + nodeString(l.Expr) + " in " + nodeString(l.Body) + ")"
}

func (i *If) String() string {
	return "(if " + nodeString(i.Condition) + " then " + nodeString(i.Then) + " else " + nodeString(i.Otherwise) + ")"
}

func (m *Match) String() string {
	branches := lo.Map(m.Branches, func(b Ast, i int) string {
		return strconv.Itoa(i) + ": " + nodeString(b)
	})
	return "(match " + nodeString(m.DecisionTree) + " [" + strings.Join(branches, "; ") + "])"
}

func (r *Return) String() string {
	return "(return " + nodeString(r.Expression) + ")"
}

func (a *Assignment) String() string {
	return "(" + nodeString(a.LHS) + " := " + nodeString(a.RHS) + ")"
}

func (m *MemberAccess) String() string {
	return nodeString(m.LHS) + "." + strconv.FormatUint(uint64(m.Index), 10)
}

func (t *Tuple) String() string {
	fields := lo.Map(t.Fields, func(f Atom, _ int) string { return nodeString(f) })
	if len(fields) == 1 {
		return "(" + fields[0] + ",)"
	}
	return "(" + strings.Join(fields, ", ") + ")"
}

func (b *Builtin) String() string {
	args := lo.Map(b.Args, func(a Atom, _ int) string { return nodeString(a) })
	out := b.Op.String() + "(" + strings.Join(args, ", ")
	if b.Type != nil {
		out += " : " + b.Type.String()
	}
	return out + ")"
}

func (h *Handle) String() string {
	effects := lo.Map(h.Effects, func(e *Effect, _ int) string { return e.String() })
	return "(handle " + nodeString(h.Expression) + " with [" + strings.Join(effects, ", ") + "] " + nodeString(h.Handler) + ")"
}

func (d *DecisionLeaf) String() string {
	return "leaf " + strconv.Itoa(d.Branch)
}

func (d *DecisionLet) String() string {
	return "let " + nodeString(d.Variable) + " = " + nodeString(d.Expr) + " in " + nodeString(d.Body)
}

func (d *DecisionSwitch) String() string {
	cases := lo.Map(d.Cases, func(c SwitchCase, _ int) string {
		return strconv.FormatUint(uint64(c.Tag), 10) + " -> " + nodeString(c.Tree)
	})
	if d.Else != nil {
		cases = append(cases, "else -> "+d.Else.String())
	}
	return "switch " + nodeString(d.Discriminant) + " { " + strings.Join(cases, ", ") + " }"
}

func (f *Function) String() string {
	return fmt.Sprintf("%s#%d = %s", f.Name, f.ID, nodeString(f.Body))
}

// String prints every function in ascending id order
func (p *Program) String() string {
	var out strings.Builder
	ids := lo.Keys(p.Functions)
	slices.Sort(ids)
	for _, id := range ids {
		out.WriteString(p.Functions[id].String())
		out.WriteString("\n")
	}
	return out.String()
}

func nodeString(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

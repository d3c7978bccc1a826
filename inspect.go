package mir

// Inspect traverses node depth-first, calling f for each node before its
// children. If f returns false the children of that node are skipped.
// Nodes of every kind are visited, including Effect and Handle.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	switch n := node.(type) {
	case *Lambda:
		for _, p := range n.Params {
			Inspect(p, f)
		}
		inspectAst(n.Body, f)
	case *FunctionCall:
		inspectAst(n.Function, f)
		for _, a := range n.Args {
			inspectAst(a, f)
		}
	case *Let:
		Inspect(n.Variable, f)
		inspectAst(n.Expr, f)
		inspectAst(n.Body, f)
	case *If:
		inspectAst(n.Condition, f)
		inspectAst(n.Then, f)
		inspectAst(n.Otherwise, f)
	case *Match:
		inspectTree(n.DecisionTree, f)
		for _, b := range n.Branches {
			inspectAst(b, f)
		}
	case *Return:
		inspectAst(n.Expression, f)
	case *Assignment:
		inspectAst(n.LHS, f)
		inspectAst(n.RHS, f)
	case *MemberAccess:
		inspectAst(n.LHS, f)
	case *Tuple:
		for _, a := range n.Fields {
			inspectAst(a, f)
		}
	case *Builtin:
		for _, a := range n.Args {
			inspectAst(a, f)
		}
	case *Handle:
		for _, e := range n.Effects {
			Inspect(e, f)
		}
		inspectAst(n.Expression, f)
		inspectAst(n.Handler, f)
	case *DecisionLet:
		Inspect(n.Variable, f)
		inspectAst(n.Expr, f)
		inspectTree(n.Body, f)
	case *DecisionSwitch:
		inspectAst(n.Discriminant, f)
		for _, c := range n.Cases {
			inspectTree(c.Tree, f)
		}
		inspectTree(n.Else, f)
	case *Function:
		inspectAst(n.Body, f)
	}
}

// The helpers keep a nil interface of a narrower type from reaching Inspect
// as a non-nil Node.

func inspectAst(a Ast, f func(Node) bool) {
	if a != nil {
		Inspect(a, f)
	}
}

func inspectTree(t DecisionTree, f func(Node) bool) {
	if t != nil {
		Inspect(t, f)
	}
}

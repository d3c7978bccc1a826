package mir

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// evalMatch reduces a match. Pattern bindings introduced by DecisionLet
// nodes shadow outer substitutions both in the rest of the tree and in
// every branch reachable through them.
func (ev *evaluator) evalMatch(m *Match, subst Substitutions) Ast {
	// bound[i] collects the ids bound on the paths leading to branch i
	bound := make([][]DefinitionID, len(m.Branches))
	tree := ev.evalDecisionTree(m.DecisionTree, subst, nil, bound)

	branches := make([]Ast, len(m.Branches))
	for i, branch := range m.Branches {
		branchSubst := subst
		for _, id := range lo.Uniq(bound[i]) {
			branchSubst = branchSubst.Remove(id)
		}
		branches[i] = ev.evalAst(branch, branchSubst)
	}
	return &Match{DecisionTree: tree, Branches: branches, ResultType: m.ResultType}
}

func (ev *evaluator) evalDecisionTree(tree DecisionTree, subst Substitutions, path []DefinitionID, bound [][]DefinitionID) DecisionTree {
	switch t := tree.(type) {
	case *DecisionLeaf:
		if t.Branch < 0 || t.Branch >= len(bound) {
			ev.fail(BranchIndexError(ev.loc, t, len(bound)))
		}
		bound[t.Branch] = append(bound[t.Branch], path...)
		return &DecisionLeaf{Branch: t.Branch}

	case *DecisionLet:
		// The extracted value is computed in the enclosing scope
		expr := ev.evalAst(t.Expr, subst)
		inner := subst.Remove(t.Variable.ID)
		path = append(slices.Clip(path), t.Variable.ID)
		return &DecisionLet{
			Variable: t.Variable,
			Expr:     expr,
			Body:     ev.evalDecisionTree(t.Body, inner, path, bound),
		}

	case *DecisionSwitch:
		result := &DecisionSwitch{
			Discriminant: ev.evalAtom(t.Discriminant, subst),
			Cases: lo.Map(t.Cases, func(c SwitchCase, _ int) SwitchCase {
				return SwitchCase{Tag: c.Tag, Tree: ev.evalDecisionTree(c.Tree, subst, path, bound)}
			}),
		}
		if t.Else != nil {
			result.Else = ev.evalDecisionTree(t.Else, subst, path, bound)
		}
		return result
	}
	ev.fail(UnknownNodeError(ev.loc, tree))
	return nil
}

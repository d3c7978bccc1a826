// Completion: 100% - Input and output checks complete
package mir

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Validate checks the input contract of the evaluation pass for every
// function and reports all violations at once: effect and handle nodes
// left behind by CPS conversion, malformed builtins and decision tree
// leaves that select a missing branch.
func Validate(program *Program) error {
	return collectViolations(program).Err()
}

func collectViolations(program *Program) *ErrorCollector {
	ec := NewErrorCollector()
	ids := lo.Keys(program.Functions)
	slices.Sort(ids)
	for _, id := range ids {
		validateFunction(program.Functions[id], ec)
	}
	return ec
}

func validateFunction(fn *Function, ec *ErrorCollector) {
	loc := Location{Function: fn.ID, Name: fn.Name}
	Inspect(fn, func(n Node) bool {
		switch node := n.(type) {
		case *Effect:
			ec.AddError(EffectAfterCPSError(loc, node))
		case *Handle:
			ec.AddError(HandleAfterCPSError(loc, node))
		case *Builtin:
			if reason := node.checkShape(); reason != "" {
				ec.AddError(BuiltinShapeError(loc, node, reason))
			}
		case *Match:
			// Nested matches are reached by the outer walk and checked
			// against their own branches
			for _, leaf := range treeLeaves(node.DecisionTree, nil) {
				if leaf.Branch < 0 || leaf.Branch >= len(node.Branches) {
					ec.AddError(BranchIndexError(loc, leaf, len(node.Branches)))
				}
			}
		}
		return true
	})
}

// treeLeaves appends the leaves of tree, following only the tree structure
func treeLeaves(tree DecisionTree, leaves []*DecisionLeaf) []*DecisionLeaf {
	switch t := tree.(type) {
	case *DecisionLeaf:
		leaves = append(leaves, t)
	case *DecisionLet:
		leaves = treeLeaves(t.Body, leaves)
	case *DecisionSwitch:
		for _, c := range t.Cases {
			leaves = treeLeaves(c.Tree, leaves)
		}
		leaves = treeLeaves(t.Else, leaves)
	}
	return leaves
}

// ResidualCompileTimeCalls counts the calls in node that the pass would
// still inline: a lambda callee where either side is flagged compile-time.
func ResidualCompileTimeCalls(node Node) int {
	count := 0
	Inspect(node, func(n Node) bool {
		if call, ok := n.(*FunctionCall); ok {
			if lambda, ok := call.Function.(*Lambda); ok && (lambda.CompileTime || call.CompileTime) {
				count++
			}
		}
		return true
	})
	return count
}

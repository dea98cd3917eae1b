package mutators

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/varmint/internal/model"
)

// comparisonSubstitutes maps each relational operator to its replacement
// set, classic relational-operator-replacement style: negate the operator
// and tighten or shift the boundary.
var comparisonSubstitutes = map[token.Token][]token.Token{
	token.EQL: {token.NEQ, token.LSS},
	token.NEQ: {token.EQL, token.LSS},
	token.LSS: {token.LEQ, token.GTR},
	token.GTR: {token.GEQ, token.LSS},
	token.LEQ: {token.LSS, token.GTR},
	token.GEQ: {token.GTR, token.LSS},
}

// GenerateComparisonMutations generates relational operator mutations for
// the given AST node. Chained comparisons parse as nested binary
// expressions, so each comparator position is mutated independently.
func GenerateComparisonMutations(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	binExpr, ok := n.(*ast.BinaryExpr)
	if !ok {
		return nil
	}

	substitutes, ok := comparisonSubstitutes[binExpr.Op]
	if !ok {
		return nil
	}

	var mutations []m.Mutation

	for _, mutatedOp := range substitutes {
		mutation, ok := operatorMutation(m.MutationComparison, binExpr, mutatedOp, fset, content, file)
		if !ok {
			continue
		}

		mutations = append(mutations, mutation)
	}

	return mutations
}

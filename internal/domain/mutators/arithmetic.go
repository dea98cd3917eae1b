package mutators

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/varmint/internal/model"
)

// arithmeticSubstitutes maps each arithmetic operator to its fixed set of
// replacement operators. Two substitutes per operator keeps the mutant count
// bounded while still covering inversion and scaling mistakes.
var arithmeticSubstitutes = map[token.Token][]token.Token{
	token.ADD: {token.SUB, token.MUL},
	token.SUB: {token.ADD, token.QUO},
	token.MUL: {token.QUO, token.ADD},
	token.QUO: {token.MUL, token.REM},
	token.REM: {token.MUL, token.QUO},
}

// GenerateArithmeticMutations generates arithmetic operator mutations for
// the given AST node.
func GenerateArithmeticMutations(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	binExpr, ok := n.(*ast.BinaryExpr)
	if !ok {
		return nil
	}

	substitutes, ok := arithmeticSubstitutes[binExpr.Op]
	if !ok {
		return nil
	}

	var mutations []m.Mutation

	for _, mutatedOp := range substitutes {
		mutation, ok := operatorMutation(m.MutationArithmetic, binExpr, mutatedOp, fset, content, file)
		if !ok {
			continue
		}

		mutations = append(mutations, mutation)
	}

	return mutations
}

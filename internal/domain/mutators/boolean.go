package mutators

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/varmint/internal/model"
)

// GenerateBooleanMutations generates logical operator mutations: one
// AND<->OR swap per boolean expression and one negation removal per NOT.
func GenerateBooleanMutations(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	switch expr := n.(type) {
	case *ast.BinaryExpr:
		return swapLogicalOperator(expr, fset, content, file)
	case *ast.UnaryExpr:
		return removeNegation(expr, fset, content, file)
	}

	return nil
}

func swapLogicalOperator(binExpr *ast.BinaryExpr, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	var mutatedOp token.Token

	switch binExpr.Op {
	case token.LAND:
		mutatedOp = token.LOR
	case token.LOR:
		mutatedOp = token.LAND
	default:
		return nil
	}

	mutation, ok := operatorMutation(m.MutationBoolean, binExpr, mutatedOp, fset, content, file)
	if !ok {
		return nil
	}

	return []m.Mutation{mutation}
}

func removeNegation(unaryExpr *ast.UnaryExpr, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	if unaryExpr.Op != token.NOT {
		return nil
	}

	start, end, ok := nodeRange(fset, unaryExpr, content)
	if !ok {
		return nil
	}

	operand := nodeText(fset, unaryExpr.X, content)
	if operand == "" {
		return nil
	}

	pos := fset.Position(unaryExpr.Pos())

	return []m.Mutation{{
		Type:           m.MutationBoolean,
		SourceFile:     file,
		Line:           pos.Line,
		Column:         pos.Column,
		Original:       string(content[start:end]),
		Mutated:        operand,
		OriginalNode:   "negation \"" + string(content[start:end]) + "\"",
		MutatedNode:    "operand \"" + operand + "\"",
		MutatedContent: replaceRange(content, start, end, operand),
	}}
}

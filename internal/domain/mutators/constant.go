package mutators

import (
	"go/ast"
	"go/token"
	"strconv"

	m "github.com/mouse-blink/varmint/internal/model"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// GenerateConstantMutations generates literal mutations: boolean literals
// flip, numeric literals flip zero<->non-zero, non-empty string literals
// become empty. Unrecognized literal kinds (nil, runes, imaginary numbers)
// are left alone.
func GenerateConstantMutations(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	switch node := n.(type) {
	case *ast.Ident:
		return flipBooleanLiteral(node, fset, content, file)
	case *ast.BasicLit:
		return mutateBasicLit(node, fset, content, file)
	}

	return nil
}

func flipBooleanLiteral(ident *ast.Ident, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	if ident.Name != trueStr && ident.Name != falseStr {
		return nil
	}

	mutated := trueStr
	if ident.Name == trueStr {
		mutated = falseStr
	}

	return literalMutation(ident, ident.Name, mutated, "boolean literal", fset, content, file)
}

func mutateBasicLit(lit *ast.BasicLit, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	switch lit.Kind {
	case token.INT, token.FLOAT:
		return mutateNumericLit(lit, fset, content, file)
	case token.STRING:
		return mutateStringLit(lit, fset, content, file)
	default:
		return nil
	}
}

func mutateNumericLit(lit *ast.BasicLit, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	zero, ok := isZeroNumber(lit)
	if !ok {
		return nil
	}

	mutated := "0"
	if zero {
		mutated = "1"
	}

	return literalMutation(lit, lit.Value, mutated, "numeric literal", fset, content, file)
}

func mutateStringLit(lit *ast.BasicLit, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	value, err := strconv.Unquote(lit.Value)
	if err != nil || value == "" {
		return nil
	}

	return literalMutation(lit, lit.Value, `""`, "string literal", fset, content, file)
}

// isZeroNumber reports whether the literal evaluates to zero. The second
// return is false for literal forms the mutator does not recognize.
func isZeroNumber(lit *ast.BasicLit) (bool, bool) {
	if lit.Kind == token.INT {
		n, err := strconv.ParseUint(lit.Value, 0, 64)
		if err != nil {
			return false, false
		}

		return n == 0, true
	}

	f, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		return false, false
	}

	return f == 0, true
}

func literalMutation(node ast.Node, original, mutated, kind string, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	start, end, ok := nodeRange(fset, node, content)
	if !ok {
		return nil
	}

	pos := fset.Position(node.Pos())

	return []m.Mutation{{
		Type:           m.MutationConstant,
		SourceFile:     file,
		Line:           pos.Line,
		Column:         pos.Column,
		Original:       original,
		Mutated:        mutated,
		OriginalNode:   kind + " " + original,
		MutatedNode:    kind + " " + mutated,
		MutatedContent: replaceRange(content, start, end, mutated),
	}}
}

package mutators

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	m "github.com/mouse-blink/varmint/internal/model"
)

// GenerateReturnMutations generates return statement mutations: every return
// of a non-trivial value is replaced with a return of the function's zero
// values. Triggered per function so the replacement can be derived from the
// signature; nested function literals are handled when the walk reaches them
// as their own nodes.
func GenerateReturnMutations(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	var (
		funcType *ast.FuncType
		body     *ast.BlockStmt
	)

	switch fn := n.(type) {
	case *ast.FuncDecl:
		funcType, body = fn.Type, fn.Body
	case *ast.FuncLit:
		funcType, body = fn.Type, fn.Body
	default:
		return nil
	}

	if body == nil || funcType.Results == nil || len(funcType.Results.List) == 0 {
		return nil
	}

	replacement := emptyReturnFor(funcType.Results, fset, content)

	var mutations []m.Mutation

	ast.Inspect(body, func(node ast.Node) bool {
		if _, ok := node.(*ast.FuncLit); ok {
			return false
		}

		ret, ok := node.(*ast.ReturnStmt)
		if !ok {
			return true
		}

		if len(ret.Results) == 0 || allTrivialResults(ret.Results) {
			return true
		}

		mutation, ok := returnMutation(ret, replacement, fset, content, file)
		if ok {
			mutations = append(mutations, mutation)
		}

		return true
	})

	return mutations
}

func returnMutation(ret *ast.ReturnStmt, replacement string, fset *token.FileSet, content []byte, file m.Path) (m.Mutation, bool) {
	start, end, ok := nodeRange(fset, ret, content)
	if !ok {
		return m.Mutation{}, false
	}

	original := string(content[start:end])
	if original == replacement {
		return m.Mutation{}, false
	}

	pos := fset.Position(ret.Pos())

	return m.Mutation{
		Type:           m.MutationReturn,
		SourceFile:     file,
		Line:           pos.Line,
		Column:         pos.Column,
		Original:       original,
		Mutated:        replacement,
		OriginalNode:   "return statement \"" + original + "\"",
		MutatedNode:    "return statement \"" + replacement + "\"",
		MutatedContent: replaceRange(content, start, end, replacement),
	}, true
}

// emptyReturnFor derives the "empty" return for a result list. Named results
// allow a bare return; otherwise each result type contributes its zero
// value.
func emptyReturnFor(results *ast.FieldList, fset *token.FileSet, content []byte) string {
	for _, field := range results.List {
		if len(field.Names) > 0 {
			return "return"
		}
	}

	values := make([]string, 0, len(results.List))
	for _, field := range results.List {
		values = append(values, zeroValueFor(field.Type, fset, content))
	}

	return "return " + strings.Join(values, ", ")
}

// zeroValueFor maps a result type expression to a zero-value expression
// using only syntactic information. Types that cannot be classified fall
// back to *new(T), which is the zero value for any T.
func zeroValueFor(typeExpr ast.Expr, fset *token.FileSet, content []byte) string {
	switch t := typeExpr.(type) {
	case *ast.Ident:
		return zeroValueForIdent(t.Name)
	case *ast.StarExpr, *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType:
		return "nil"
	default:
		text := nodeText(fset, typeExpr, content)
		if text == "" {
			return "nil"
		}

		return "*new(" + text + ")"
	}
}

func zeroValueForIdent(name string) string {
	switch name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"byte", "rune", "float32", "float64", "complex64", "complex128":
		return "0"
	case "string":
		return `""`
	case "bool":
		return falseStr
	case "error", "any":
		return "nil"
	default:
		return "*new(" + name + ")"
	}
}

// allTrivialResults reports whether every result expression is already a
// zero-ish literal, making a mutation pointless.
func allTrivialResults(results []ast.Expr) bool {
	for _, result := range results {
		if !isTrivialResult(result) {
			return false
		}
	}

	return true
}

func isTrivialResult(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name == "nil" || e.Name == falseStr
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT, token.FLOAT:
			zero, ok := isZeroNumber(e)

			return ok && zero
		case token.STRING:
			value, err := strconv.Unquote(e.Value)

			return err == nil && value == ""
		}
	}

	return false
}

// Package mutators provides the generators that scan a parsed source tree
// and propose mutations for one language-construct category each.
package mutators

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/varmint/internal/model"
)

// offsetForPos resolves a token position to a byte offset in the file
// content. Returns false for positions outside the file set.
func offsetForPos(fset *token.FileSet, pos token.Pos) (int, bool) {
	if !pos.IsValid() {
		return 0, false
	}

	position := fset.PositionFor(pos, false)
	if position.Offset < 0 {
		return 0, false
	}

	return position.Offset, true
}

// replaceRange returns a fresh copy of content with [start, end) replaced by
// replacement. The input slice is never modified.
func replaceRange(content []byte, start, end int, replacement string) []byte {
	if start < 0 || end < start || end > len(content) {
		return nil
	}

	mutated := make([]byte, 0, len(content)-(end-start)+len(replacement))
	mutated = append(mutated, content[:start]...)
	mutated = append(mutated, replacement...)
	mutated = append(mutated, content[end:]...)

	return mutated
}

// nodeRange returns the byte offsets covering node in content.
func nodeRange(fset *token.FileSet, node ast.Node, content []byte) (int, int, bool) {
	start, ok := offsetForPos(fset, node.Pos())
	if !ok {
		return 0, 0, false
	}

	end, ok := offsetForPos(fset, node.End())
	if !ok || end > len(content) {
		return 0, 0, false
	}

	return start, end, true
}

// nodeText returns the source snippet covering node.
func nodeText(fset *token.FileSet, node ast.Node, content []byte) string {
	start, end, ok := nodeRange(fset, node, content)
	if !ok {
		return ""
	}

	return string(content[start:end])
}

// operatorMutation builds a mutation that swaps the operator of a binary
// expression. The recorded snippets cover the whole expression so reports
// show the change in context.
func operatorMutation(
	mutationType m.MutationType,
	binExpr *ast.BinaryExpr,
	mutatedOp token.Token,
	fset *token.FileSet,
	content []byte,
	file m.Path,
) (m.Mutation, bool) {
	opStart, ok := offsetForPos(fset, binExpr.OpPos)
	if !ok {
		return m.Mutation{}, false
	}

	exprStart, exprEnd, ok := nodeRange(fset, binExpr, content)
	if !ok {
		return m.Mutation{}, false
	}

	original := binExpr.Op.String()
	opEnd := opStart + len(original)
	pos := fset.Position(binExpr.OpPos)

	originalExpr := string(content[exprStart:exprEnd])
	mutatedExpr := string(replaceRange([]byte(originalExpr), opStart-exprStart, opEnd-exprStart, mutatedOp.String()))

	return m.Mutation{
		Type:           mutationType,
		SourceFile:     file,
		Line:           pos.Line,
		Column:         pos.Column,
		Original:       originalExpr,
		Mutated:        mutatedExpr,
		OriginalNode:   describeOperator(original),
		MutatedNode:    describeOperator(mutatedOp.String()),
		MutatedContent: replaceRange(content, opStart, opEnd, mutatedOp.String()),
	}, true
}

func describeOperator(op string) string {
	return "binary operator \"" + op + "\""
}

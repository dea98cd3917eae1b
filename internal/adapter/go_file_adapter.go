package adapter

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can
// focus on mutation rules while delegating language details to an
// infrastructure component. Swapping this adapter is the extension point for
// mutating a different language.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and source bytes.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// VerifyParses checks that src is syntactically valid without keeping
	// the resulting AST. Apply uses it to reject unparsable mutated content
	// before touching the live file.
	VerifyParses(filename string, src []byte) error
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	return parser.ParseFile(fileSet, filename, src, parser.ParseComments)
}

// VerifyParses reports whether src parses as a Go source file.
func (a *LocalGoFileAdapter) VerifyParses(filename string, src []byte) error {
	_, err := parser.ParseFile(token.NewFileSet(), filename, src, parser.ParseComments)

	return err
}

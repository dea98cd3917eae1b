// Package domain contains the core mutation testing engine and logic.
package domain

import (
	"go/ast"
	"go/token"

	"github.com/mouse-blink/varmint/internal/domain/mutators"
	m "github.com/mouse-blink/varmint/internal/model"
)

// Generator scans one AST node and proposes mutations for its category.
// Implementations must be deterministic: the same node and content always
// produce the same mutations in the same order.
type Generator func(n ast.Node, fset *token.FileSet, content []byte, file m.Path) []m.Mutation

// GeneratorSet is an immutable category->generator lookup table, built once
// and injected into the engine. Registering a custom generator is adding an
// entry before construction.
type GeneratorSet map[m.MutationType]Generator

// NewGeneratorSet returns the default table covering all five supported
// categories.
func NewGeneratorSet() GeneratorSet {
	return GeneratorSet{
		m.MutationArithmetic: mutators.GenerateArithmeticMutations,
		m.MutationComparison: mutators.GenerateComparisonMutations,
		m.MutationBoolean:    mutators.GenerateBooleanMutations,
		m.MutationConstant:   mutators.GenerateConstantMutations,
		m.MutationReturn:     mutators.GenerateReturnMutations,
	}
}

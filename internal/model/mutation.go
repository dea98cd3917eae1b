// Package model defines the data structures for mutation testing.
package model

// Path represents a file system path.
type Path string

// MutationType represents the category of mutation.
type MutationType string

const (
	// MutationArithmetic represents arithmetic operator mutations (+, -, *, /, %).
	MutationArithmetic MutationType = "arithmetic"
	// MutationComparison represents relational operator mutations (==, !=, <, >, <=, >=).
	MutationComparison MutationType = "comparison"
	// MutationBoolean represents logical operator mutations (&& <-> ||, negation removal).
	MutationBoolean MutationType = "boolean"
	// MutationConstant represents literal mutations (booleans flip, numbers zero<->non-zero, strings empty).
	MutationConstant MutationType = "constant"
	// MutationReturn represents return statement mutations (values replaced with zero values).
	MutationReturn MutationType = "return"
)

// AllMutationTypes lists every supported category in canonical order. The
// order is load-bearing: mutation IDs and report ordering follow it.
var AllMutationTypes = []MutationType{
	MutationArithmetic,
	MutationComparison,
	MutationBoolean,
	MutationConstant,
	MutationReturn,
}

// Known reports whether t is one of the supported categories.
func (t MutationType) Known() bool {
	for _, known := range AllMutationTypes {
		if t == known {
			return true
		}
	}

	return false
}

// Mutation represents one candidate change to a source file. It is created
// transiently during a run and discarded once converted into a Result.
type Mutation struct {
	ID         string
	Type       MutationType
	SourceFile Path
	Line       int
	Column     int

	// Original and Mutated are the source snippets before and after the
	// change, for reporting.
	Original string
	Mutated  string

	// OriginalNode and MutatedNode describe the affected construct in
	// human-readable form (e.g. `binary operator "+"`).
	OriginalNode string
	MutatedNode  string

	// SourceHash is the SHA-256 of the file content the mutation was
	// generated from. Apply refuses to touch a file whose content no
	// longer matches.
	SourceHash string

	// MutatedContent is the complete post-mutation file content. Carrying
	// the whole content avoids re-locating AST nodes by position after a
	// fresh re-parse, which misfires when identical nodes share a line.
	MutatedContent []byte
}

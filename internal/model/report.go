package model

import "time"

// MutationResult records the outcome of testing one mutation. TestsPassed
// and TestsFailed are complementary: passing tests mean the mutation went
// undetected (survived), failing tests mean it was caught.
type MutationResult struct {
	MutationID    string        `yaml:"mutation_id"`
	Type          MutationType  `yaml:"mutation_type"`
	SourceFile    Path          `yaml:"source_file"`
	Line          int           `yaml:"line"`
	Original      string        `yaml:"original_code"`
	Mutated       string        `yaml:"mutated_code"`
	TestsPassed   bool          `yaml:"tests_passed"`
	TestsFailed   bool          `yaml:"tests_failed"`
	ExecutionTime time.Duration `yaml:"execution_time"`
}

// Survived reports whether the mutation went undetected.
func (r MutationResult) Survived() bool {
	return r.TestsPassed
}

// MutationScore aggregates one engine run. TotalMutations counts only
// mutations that were successfully evaluated; skipped mutations are tracked
// separately so the score denominator stays transparent.
type MutationScore struct {
	TotalMutations    int              `yaml:"total_mutations"`
	MutationsCaught   int              `yaml:"mutations_caught"`
	MutationsSurvived int              `yaml:"mutations_survived"`
	MutationsSkipped  int              `yaml:"mutations_skipped"`
	Score             float64          `yaml:"mutation_score"`
	Survivors         []MutationResult `yaml:"survivors,omitempty"`
}

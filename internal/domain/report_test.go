package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/varmint/internal/model"
)

func TestVerdict(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 1.0, want: "excellent"},
		{score: 0.95, want: "excellent"},
		{score: 0.949, want: "good"},
		{score: 0.80, want: "good"},
		{score: 0.799, want: "fair"},
		{score: 0.60, want: "fair"},
		{score: 0.599, want: "poor"},
		{score: 0.0, want: "poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Verdict(tt.score), "score %.3f", tt.score)
	}
}

func TestGenerateReport(t *testing.T) {
	t.Run("shows totals, score and verdict", func(t *testing.T) {
		report := GenerateReport(m.MutationScore{
			TotalMutations:    4,
			MutationsCaught:   3,
			MutationsSurvived: 1,
			MutationsSkipped:  2,
			Score:             0.75,
		})

		assert.Contains(t, report, "Mutation Testing Report")
		assert.Contains(t, report, "Total evaluated")
		assert.Contains(t, report, "Caught")
		assert.Contains(t, report, "Survived")
		assert.Contains(t, report, "Skipped (not evaluated)")
		assert.Contains(t, report, "Mutation score: 75.0%")
		assert.Contains(t, report, "fair")
	})

	t.Run("itemizes surviving mutations with diffs", func(t *testing.T) {
		report := GenerateReport(m.MutationScore{
			TotalMutations:    2,
			MutationsCaught:   1,
			MutationsSurvived: 1,
			Score:             0.5,
			Survivors: []m.MutationResult{{
				MutationID:    "ARITHMETIC_1",
				Type:          m.MutationArithmetic,
				SourceFile:    "pkg/calc.go",
				Line:          7,
				Original:      "a + b",
				Mutated:       "a - b",
				TestsPassed:   true,
				ExecutionTime: 230 * time.Millisecond,
			}},
		})

		assert.Contains(t, report, "Surviving mutations (1):")
		assert.Contains(t, report, "pkg/calc.go:7 [arithmetic] ARITHMETIC_1 (230ms)")
		assert.Contains(t, report, "a + b")
		assert.Contains(t, report, "a - b")
	})

	t.Run("omits the survivor section for a clean run", func(t *testing.T) {
		report := GenerateReport(m.MutationScore{
			TotalMutations:  3,
			MutationsCaught: 3,
			Score:           1.0,
		})

		assert.NotContains(t, report, "Surviving mutations")
		assert.Contains(t, report, "Mutation score: 100.0%")
		assert.Contains(t, report, "excellent")
	})

	t.Run("is deterministic", func(t *testing.T) {
		score := m.MutationScore{
			TotalMutations:    2,
			MutationsCaught:   1,
			MutationsSurvived: 1,
			Score:             0.5,
			Survivors: []m.MutationResult{{
				MutationID: "CONSTANT_1",
				Type:       m.MutationConstant,
				SourceFile: "main.go",
				Line:       3,
				Original:   `"hello"`,
				Mutated:    `""`,
			}},
		}

		assert.Equal(t, GenerateReport(score), GenerateReport(score))
	})
}

package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/varmint/internal/model"
)

func TestYAMLReportStore(t *testing.T) {
	t.Run("save and load round-trips a score", func(t *testing.T) {
		store := NewReportStore()
		dir := m.Path(filepath.Join(t.TempDir(), "reports"))

		score := m.MutationScore{
			TotalMutations:    4,
			MutationsCaught:   3,
			MutationsSurvived: 1,
			MutationsSkipped:  2,
			Score:             0.75,
			Survivors: []m.MutationResult{{
				MutationID:    "ARITHMETIC_1",
				Type:          m.MutationArithmetic,
				SourceFile:    "main.go",
				Line:          7,
				Original:      "a + b",
				Mutated:       "a - b",
				TestsPassed:   true,
				ExecutionTime: 120 * time.Millisecond,
			}},
		}

		require.NoError(t, store.SaveScore(dir, score))

		loaded, err := store.LoadScore(dir)
		require.NoError(t, err)
		assert.Equal(t, score, loaded)
	})

	t.Run("save creates the reports directory", func(t *testing.T) {
		store := NewReportStore()
		dir := m.Path(filepath.Join(t.TempDir(), "nested", "reports"))

		require.NoError(t, store.SaveScore(dir, m.MutationScore{Score: 1.0}))

		_, err := os.Stat(filepath.Join(string(dir), ScoreFileName))
		assert.NoError(t, err)
	})

	t.Run("load fails for a missing score file", func(t *testing.T) {
		store := NewReportStore()

		_, err := store.LoadScore(m.Path(t.TempDir()))
		assert.Error(t, err)
	})

	t.Run("load fails on malformed yaml", func(t *testing.T) {
		store := NewReportStore()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ScoreFileName), []byte("{not yaml"), 0o600))

		_, err := store.LoadScore(m.Path(dir))
		assert.ErrorContains(t, err, "unmarshal")
	})
}

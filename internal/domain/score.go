package domain

import (
	m "github.com/mouse-blink/varmint/internal/model"
	"github.com/mouse-blink/varmint/pkg"
)

// scoreFromResults aggregates spilled per-mutation results into a score.
// Skipped mutations never reach the spill, so they are excluded from the
// denominator by construction.
func scoreFromResults(results pkg.FileSpill[m.MutationResult]) (m.MutationScore, error) {
	var score m.MutationScore

	err := results.Range(func(_ uint64, result m.MutationResult) error {
		score.TotalMutations++

		if result.Survived() {
			score.MutationsSurvived++
			score.Survivors = append(score.Survivors, result)
		} else {
			score.MutationsCaught++
		}

		return nil
	})
	if err != nil {
		return m.MutationScore{}, err
	}

	if score.TotalMutations == 0 {
		score.Score = 1.0

		return score, nil
	}

	score.Score = float64(score.MutationsCaught) / float64(score.TotalMutations)

	return score, nil
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/varmint/internal/model"
)

// Verdict thresholds, in percent.
const (
	verdictExcellent = 95.0
	verdictGood      = 80.0
	verdictFair      = 60.0
)

// GenerateReport renders a deterministic human-readable summary of a run:
// totals, score percentage, a qualitative verdict, and an itemized listing
// of every surviving mutation.
func GenerateReport(score m.MutationScore) string {
	var b strings.Builder

	b.WriteString("Mutation Testing Report\n")
	b.WriteString("=======================\n\n")
	b.WriteString(renderTotalsTable(score))
	b.WriteString(fmt.Sprintf("\nMutation score: %.1f%% — %s\n", score.Score*100, Verdict(score.Score)))

	if len(score.Survivors) > 0 {
		b.WriteString(fmt.Sprintf("\nSurviving mutations (%d):\n\n", len(score.Survivors)))

		for _, survivor := range score.Survivors {
			b.WriteString(fmt.Sprintf("%s:%d [%s] %s (%s)\n",
				survivor.SourceFile, survivor.Line, survivor.Type, survivor.MutationID,
				survivor.ExecutionTime.Round(time.Millisecond)))
			b.WriteString(diffSnippets(survivor.Original, survivor.Mutated))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Verdict maps a 0..1 score to a qualitative rating at fixed thresholds.
func Verdict(score float64) string {
	percent := score * 100

	switch {
	case percent >= verdictExcellent:
		return "excellent"
	case percent >= verdictGood:
		return "good"
	case percent >= verdictFair:
		return "fair"
	default:
		return "poor"
	}
}

func renderTotalsTable(score m.MutationScore) string {
	var buf strings.Builder

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Total evaluated", fmt.Sprintf("%d", score.TotalMutations)})
	table.Append([]string{"Caught", fmt.Sprintf("%d", score.MutationsCaught)})
	table.Append([]string{"Survived", fmt.Sprintf("%d", score.MutationsSurvived)})
	table.Append([]string{"Skipped (not evaluated)", fmt.Sprintf("%d", score.MutationsSkipped)})

	table.Render()

	return buf.String()
}

// diffSnippets renders the original/mutated pair as a small unified diff,
// indented under the survivor header line.
func diffSnippets(original, mutated string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(mutated),
		FromFile: "original",
		ToFile:   "mutated",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil || text == "" {
		return fmt.Sprintf("  - %s\n  + %s\n", original, mutated)
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/varmint/internal/model"
)

// timePrecision is how execution times are rounded for display.
const timePrecision = time.Millisecond

// SimpleUI implements UI using cobra Command's Println. It is the non-TTY
// fallback and what tests drive.
type SimpleUI struct {
	cmd   *cobra.Command
	total int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, totalMutations int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.total = totalMutations
	s.cmd.Printf("Testing %d mutations\n", totalMutations)

	return nil
}

// MutationStarted prints a progress line for the mutation about to run.
func (s *SimpleUI) MutationStarted(ctx context.Context, mutation m.Mutation, index int) {
	if ctx.Err() != nil {
		return
	}

	s.cmd.Printf("[%d/%d] %s %s:%d\n", index, s.total, mutation.ID, mutation.SourceFile, mutation.Line)
}

// MutationTested prints the classification of one mutation.
func (s *SimpleUI) MutationTested(ctx context.Context, result m.MutationResult) {
	if ctx.Err() != nil {
		return
	}

	status := "caught"
	if result.Survived() {
		status = "SURVIVED"
	}

	s.cmd.Printf("  %s (%s)\n", status, result.ExecutionTime.Round(timePrecision))
}

// MutationSkipped notes a mutation that could not be evaluated.
func (s *SimpleUI) MutationSkipped(ctx context.Context, mutation m.Mutation, reason error) {
	if ctx.Err() != nil {
		return
	}

	s.cmd.Printf("  skipped: %v\n", reason)
}

// DisplayEstimation prints a per-file mutation count table.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, mutations []m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	statsList := buildFileStats(mutations)
	s.cmd.Printf("\n%s", renderEstimationTable(statsList, len(mutations)))

	return nil
}

// DisplayReport prints the generated text report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Println(report)

	return nil
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(_ context.Context) {}

type fileStat struct {
	path  string
	count int
}

func buildFileStats(mutations []m.Mutation) []fileStat {
	info := make(map[string]int)

	for _, mutation := range mutations {
		info[string(mutation.SourceFile)]++
	}

	statsList := make([]fileStat, 0, len(info))
	for path, count := range info {
		statsList = append(statsList, fileStat{path: path, count: count})
	}

	sort.Slice(statsList, func(i, j int) bool {
		return statsList[i].path < statsList[j].path
	})

	return statsList
}

func renderEstimationTable(statsList []fileStat, totalMutations int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mutations"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, stat := range statsList {
		table.Append([]string{stat.path, fmt.Sprintf("%d", stat.count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(statsList)),
		fmt.Sprintf("%d", totalMutations),
	})

	table.Render()

	return tableBuffer.String()
}

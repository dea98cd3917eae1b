// Package controller provides output adapters for displaying mutation
// testing progress and results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/varmint/internal/model"
)

// UI defines the interface for displaying engine progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start initializes the UI for a run over the given number of
	// mutations.
	Start(ctx context.Context, totalMutations int) error

	// MutationStarted is called before a mutation's apply/test/restore
	// cycle begins. index is 1-based.
	MutationStarted(ctx context.Context, mutation m.Mutation, index int)

	// MutationTested is called with the classified result of one mutation.
	MutationTested(ctx context.Context, result m.MutationResult)

	// MutationSkipped is called when a mutation could not be evaluated.
	MutationSkipped(ctx context.Context, mutation m.Mutation, reason error)

	// DisplayEstimation renders per-file mutation counts (list command).
	DisplayEstimation(ctx context.Context, mutations []m.Mutation) error

	// DisplayReport renders the generated text report.
	DisplayReport(ctx context.Context, report string) error

	// Close finalizes the UI.
	Close(ctx context.Context)
}

// NewUI selects the TUI on interactive terminals and the simple printer
// everywhere else.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

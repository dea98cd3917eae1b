package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/varmint/internal/model"
)

var (
	tuiHeaderStyle   = lipgloss.NewStyle().Bold(true)
	tuiCaughtStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tuiSurvivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tuiSkippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI with a Bubble Tea progress view for interactive runs.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context, totalMutations int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.program = tea.NewProgram(newRunModel(totalMutations), tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Error("tui stopped", "error", err)
		}
	}()

	return nil
}

// MutationStarted updates the current-mutation line.
func (t *TUI) MutationStarted(_ context.Context, mutation m.Mutation, index int) {
	t.send(startedMsg{mutation: mutation, index: index})
}

// MutationTested advances progress with one classified result.
func (t *TUI) MutationTested(_ context.Context, result m.MutationResult) {
	t.send(testedMsg{result: result})
}

// MutationSkipped advances progress past an unevaluated mutation.
func (t *TUI) MutationSkipped(_ context.Context, mutation m.Mutation, reason error) {
	t.send(skippedMsg{mutation: mutation, reason: reason})
}

// DisplayEstimation renders the static estimation table; no interactive
// session is needed for it.
func (t *TUI) DisplayEstimation(ctx context.Context, mutations []m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "\n%s", renderEstimationTable(buildFileStats(mutations), len(mutations)))

	return err
}

// DisplayReport prints the report. It is expected after Close, once the
// progress program has exited and released the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(t.output, report)

	return err
}

// Close stops the progress program and waits for it to release the
// terminal.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.send(quitMsg{})

	select {
	case <-t.done:
	case <-ctx.Done():
		t.program.Kill()
	}

	t.program = nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

type startedMsg struct {
	mutation m.Mutation
	index    int
}

type testedMsg struct {
	result m.MutationResult
}

type skippedMsg struct {
	mutation m.Mutation
	reason   error
}

type quitMsg struct{}

type runModel struct {
	spinner  spinner.Model
	progress progress.Model
	total    int
	done     int
	caught   int
	survived int
	skipped  int
	current  string
	quitting bool
}

func newRunModel(total int) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return runModel{
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		total:    total,
	}
}

func (model runModel) Init() tea.Cmd {
	return model.spinner.Tick
}

func (model runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			model.quitting = true

			return model, tea.Quit
		}

		return model, nil

	case startedMsg:
		model.current = fmt.Sprintf("%s %s:%d", msg.mutation.ID, msg.mutation.SourceFile, msg.mutation.Line)

		return model, nil

	case testedMsg:
		model.done++
		if msg.result.Survived() {
			model.survived++
		} else {
			model.caught++
		}

		return model, nil

	case skippedMsg:
		model.done++
		model.skipped++

		return model, nil

	case quitMsg:
		model.quitting = true

		return model, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(msg)

		return model, cmd
	}

	return model, nil
}

func (model runModel) View() string {
	if model.quitting {
		return ""
	}

	percent := 0.0
	if model.total > 0 {
		percent = float64(model.done) / float64(model.total)
	}

	var b strings.Builder

	b.WriteString(tuiHeaderStyle.Render("varmint mutation testing"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", model.spinner.View(), model.current))
	b.WriteString(model.progress.ViewAs(percent))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s  (%d/%d)\n",
		tuiCaughtStyle.Render(fmt.Sprintf("caught %d", model.caught)),
		tuiSurvivedStyle.Render(fmt.Sprintf("survived %d", model.survived)),
		tuiSkippedStyle.Render(fmt.Sprintf("skipped %d", model.skipped)),
		model.done, model.total))

	return b.String()
}

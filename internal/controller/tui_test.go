package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/varmint/internal/model"
)

func updateModel(t *testing.T, model runModel, msg tea.Msg) runModel {
	t.Helper()

	updated, _ := model.Update(msg)

	next, ok := updated.(runModel)
	require.True(t, ok)

	return next
}

func TestRunModelUpdate(t *testing.T) {
	t.Run("started message sets the current line", func(t *testing.T) {
		model := newRunModel(4)

		model = updateModel(t, model, startedMsg{
			mutation: m.Mutation{ID: "ARITHMETIC_1", SourceFile: "main.go", Line: 7},
			index:    1,
		})

		assert.Contains(t, model.View(), "ARITHMETIC_1 main.go:7")
	})

	t.Run("tested messages tally caught and survived", func(t *testing.T) {
		model := newRunModel(4)

		model = updateModel(t, model, testedMsg{result: m.MutationResult{TestsFailed: true}})
		model = updateModel(t, model, testedMsg{result: m.MutationResult{TestsPassed: true}})

		assert.Equal(t, 2, model.done)
		assert.Equal(t, 1, model.caught)
		assert.Equal(t, 1, model.survived)

		view := model.View()
		assert.Contains(t, view, "caught 1")
		assert.Contains(t, view, "survived 1")
		assert.Contains(t, view, "(2/4)")
	})

	t.Run("skipped messages advance progress", func(t *testing.T) {
		model := newRunModel(2)

		model = updateModel(t, model, skippedMsg{
			mutation: m.Mutation{ID: "RETURN_1"},
			reason:   errors.New("timed out"),
		})

		assert.Equal(t, 1, model.skipped)
		assert.Contains(t, model.View(), "skipped 1")
	})

	t.Run("quit message blanks the view", func(t *testing.T) {
		model := newRunModel(1)

		updated, cmd := model.Update(quitMsg{})
		require.NotNil(t, cmd)

		next, ok := updated.(runModel)
		require.True(t, ok)
		assert.Empty(t, next.View())
	})

	t.Run("zero total renders without dividing", func(t *testing.T) {
		model := newRunModel(0)

		assert.Contains(t, model.View(), "(0/0)")
	})
}

func TestTUIStaticOutput(t *testing.T) {
	t.Run("estimation table goes straight to the writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ui := NewTUI(buf)

		require.NoError(t, ui.DisplayEstimation(context.Background(), []m.Mutation{{SourceFile: "a.go"}}))
		assert.Contains(t, buf.String(), "a.go")
	})

	t.Run("report goes straight to the writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ui := NewTUI(buf)

		require.NoError(t, ui.DisplayReport(context.Background(), "Mutation Testing Report"))
		assert.Contains(t, buf.String(), "Mutation Testing Report")
	})

	t.Run("close without start is a no-op", func(t *testing.T) {
		ui := NewTUI(&bytes.Buffer{})

		ui.Close(context.Background())
	})
}

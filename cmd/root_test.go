package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/varmint/internal/model"
)

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (stand-in for t.Chdir, which
// requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

// executeRoot runs the root command with args and captures its output.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("registers all subcommands", func(t *testing.T) {
		names := map[string]bool{}
		for _, sub := range rootCmd.Commands() {
			names[sub.Name()] = true
		}

		for _, expected := range []string{"run", "list", "view", "init", "version"} {
			assert.True(t, names[expected], "missing subcommand %s", expected)
		}
	})

	t.Run("declares the shared flags", func(t *testing.T) {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(outputFlagName))
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(excludeFlagName))
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(verboseFlagName))
	})

	t.Run("run declares its flags", func(t *testing.T) {
		for _, name := range []string{testCommandFlagName, typeFlagName, timeoutFlagName, parallelFlagName} {
			assert.NotNil(t, runCmd.Flags().Lookup(name), "missing flag %s", name)
		}
	})

	t.Run("without arguments prints help", func(t *testing.T) {
		chdir(t, t.TempDir())

		output, err := executeRoot(t)

		require.NoError(t, err)
		assert.Contains(t, output, "varmint")
		assert.Contains(t, output, "Available Commands")
	})
}

func TestTargetFiles(t *testing.T) {
	t.Run("passes paths through without excludes", func(t *testing.T) {
		paths, err := targetFiles([]string{"a.go", "b.go"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []m.Path{"a.go", "b.go"}, paths)
	})

	t.Run("drops paths matching an exclude pattern", func(t *testing.T) {
		paths, err := targetFiles([]string{"a.go", "a_test.go", "b.go"}, []string{`_test\.go$`})

		require.NoError(t, err)
		assert.Equal(t, []m.Path{"a.go", "b.go"}, paths)
	})

	t.Run("applies multiple patterns", func(t *testing.T) {
		paths, err := targetFiles([]string{"a.go", "gen_a.go", "a_test.go"}, []string{`_test\.go$`, `^gen_`})

		require.NoError(t, err)
		assert.Equal(t, []m.Path{"a.go"}, paths)
	})

	t.Run("fails when everything is excluded", func(t *testing.T) {
		_, err := targetFiles([]string{"a.go"}, []string{`\.go$`})

		assert.ErrorContains(t, err, "no target files left")
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		_, err := targetFiles([]string{"a.go"}, []string{"("})

		assert.ErrorContains(t, err, "invalid exclude pattern")
	})
}

func TestMutationTypes(t *testing.T) {
	assert.Empty(t, mutationTypes(nil))
	assert.Equal(t, []m.MutationType{m.MutationArithmetic, m.MutationReturn}, mutationTypes([]string{"arithmetic", "return"}))
}

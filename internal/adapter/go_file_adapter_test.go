package adapter

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGoFileAdapter(t *testing.T) {
	parser := NewLocalGoFileAdapter()

	t.Run("parses valid source", func(t *testing.T) {
		file, err := parser.Parse(token.NewFileSet(), "main.go", []byte("package main\n\nfunc main() {}\n"))

		require.NoError(t, err)
		assert.Equal(t, "main", file.Name.Name)
	})

	t.Run("reports syntax errors", func(t *testing.T) {
		_, err := parser.Parse(token.NewFileSet(), "main.go", []byte("package main\n\nfunc broken( {\n"))

		assert.Error(t, err)
	})

	t.Run("verifies without keeping the tree", func(t *testing.T) {
		assert.NoError(t, parser.VerifyParses("main.go", []byte("package main\n")))
		assert.Error(t, parser.VerifyParses("main.go", []byte("package\n")))
	})
}

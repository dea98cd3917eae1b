package mutators

import (
	"reflect"
	"strings"
	"testing"

	m "github.com/mouse-blink/varmint/internal/model"
)

func TestGenerateConstantMutations(t *testing.T) {
	t.Run("covers strings, booleans and numbers", func(t *testing.T) {
		fset, file, content := parseExample(t, "constants")

		mutations := collect(GenerateConstantMutations, fset, file, content)

		expected := []string{`""`, "false", "1", "0", "0", "1"}
		if !reflect.DeepEqual(mutatedSnippets(mutations), expected) {
			t.Fatalf("expected snippets %v, got %v", expected, mutatedSnippets(mutations))
		}

		for _, mutation := range mutations {
			if mutation.Type != m.MutationConstant {
				t.Errorf("expected type %s, got %s", m.MutationConstant, mutation.Type)
			}

			verifyParses(t, mutation.MutatedContent)
		}
	})

	t.Run("flips boolean literals in both directions", func(t *testing.T) {
		fset, file, content := parseExample(t, "comparison")

		mutations := collect(GenerateConstantMutations, fset, file, content)

		expected := []string{"0", "false", "true", "0"}
		if !reflect.DeepEqual(mutatedSnippets(mutations), expected) {
			t.Fatalf("expected snippets %v, got %v", expected, mutatedSnippets(mutations))
		}
	})

	t.Run("leaves empty strings alone", func(t *testing.T) {
		fset, file, content := parseSource(t, `package p

var blank = ""
`)

		if mutations := collect(GenerateConstantMutations, fset, file, content); len(mutations) != 0 {
			t.Fatalf("expected no mutations, got %v", mutatedSnippets(mutations))
		}
	})

	t.Run("handles hex and float literals", func(t *testing.T) {
		fset, file, content := parseSource(t, `package p

var mask = 0xFF

var ratio = 0.0
`)

		mutations := collect(GenerateConstantMutations, fset, file, content)

		expected := []string{"0", "1"}
		if !reflect.DeepEqual(mutatedSnippets(mutations), expected) {
			t.Fatalf("expected snippets %v, got %v", expected, mutatedSnippets(mutations))
		}
	})

	t.Run("leaves rune and imaginary literals alone", func(t *testing.T) {
		fset, file, content := parseSource(t, `package p

var sep = ','

var phase = 2i
`)

		if mutations := collect(GenerateConstantMutations, fset, file, content); len(mutations) != 0 {
			t.Fatalf("expected no mutations, got %v", mutatedSnippets(mutations))
		}
	})

	t.Run("does not touch import paths", func(t *testing.T) {
		fset, file, content := parseExample(t, "basic")

		mutations := collect(GenerateConstantMutations, fset, file, content)

		for _, mutation := range mutations {
			if strings.Contains(mutation.Original, "fmt") {
				t.Fatalf("import path was mutated: %q", mutation.Original)
			}
		}
	})
}

package mutators

import (
	"reflect"
	"strings"
	"testing"

	m "github.com/mouse-blink/varmint/internal/model"
)

func TestGenerateArithmeticMutations(t *testing.T) {
	t.Run("generates two mutations for an addition", func(t *testing.T) {
		fset, file, content := parseExample(t, "basic")

		mutations := collect(GenerateArithmeticMutations, fset, file, content)

		if len(mutations) != 2 {
			t.Fatalf("expected 2 mutations, got %d: %v", len(mutations), mutatedSnippets(mutations))
		}

		expected := []string{"a - b", "a * b"}
		if !reflect.DeepEqual(mutatedSnippets(mutations), expected) {
			t.Fatalf("expected snippets %v, got %v", expected, mutatedSnippets(mutations))
		}

		for _, mutation := range mutations {
			if mutation.Type != m.MutationArithmetic {
				t.Errorf("expected type %s, got %s", m.MutationArithmetic, mutation.Type)
			}

			if mutation.Original != "a + b" {
				t.Errorf("expected original %q, got %q", "a + b", mutation.Original)
			}

			if mutation.Line != 7 {
				t.Errorf("expected line 7, got %d", mutation.Line)
			}
		}
	})

	t.Run("mutated content parses and carries the substitution", func(t *testing.T) {
		fset, file, content := parseExample(t, "basic")

		mutations := collect(GenerateArithmeticMutations, fset, file, content)

		for _, mutation := range mutations {
			verifyParses(t, mutation.MutatedContent)

			if !strings.Contains(string(mutation.MutatedContent), mutation.Mutated) {
				t.Errorf("mutated content missing snippet %q", mutation.Mutated)
			}

			if strings.Contains(string(mutation.MutatedContent), "a + b") {
				t.Errorf("mutated content still contains the original expression")
			}
		}
	})

	t.Run("covers every operator in the substitution table", func(t *testing.T) {
		fset, file, content := parseSource(t, `package p

func ops(a, b int) int {
	return a + b - a*b/2%3
}
`)

		mutations := collect(GenerateArithmeticMutations, fset, file, content)

		// Five operators with two substitutes each.
		if len(mutations) != 10 {
			t.Fatalf("expected 10 mutations, got %d", len(mutations))
		}

		for _, mutation := range mutations {
			verifyParses(t, mutation.MutatedContent)
		}
	})

	t.Run("ignores non-arithmetic expressions", func(t *testing.T) {
		fset, file, content := parseExample(t, "comparison")

		if mutations := collect(GenerateArithmeticMutations, fset, file, content); len(mutations) != 0 {
			t.Fatalf("expected no mutations, got %v", mutatedSnippets(mutations))
		}
	})

	t.Run("generates nothing for an empty program", func(t *testing.T) {
		fset, file, content := parseExample(t, "empty")

		if mutations := collect(GenerateArithmeticMutations, fset, file, content); len(mutations) != 0 {
			t.Fatalf("expected no mutations, got %d", len(mutations))
		}
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		fset, file, content := parseExample(t, "basic")

		first := collect(GenerateArithmeticMutations, fset, file, content)
		second := collect(GenerateArithmeticMutations, fset, file, content)

		if !reflect.DeepEqual(first, second) {
			t.Fatal("expected identical mutations on repeated runs")
		}
	})
}

package domain

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/varmint/internal/adapter"
	"github.com/mouse-blink/varmint/internal/controller"
	m "github.com/mouse-blink/varmint/internal/model"
	"github.com/mouse-blink/varmint/pkg"
)

// Engine orchestrates one mutation testing run: generate, then for each
// mutation apply, test, restore, classify, and finally score.
type Engine interface {
	// GenerateMutations reads and parses the file once and runs every
	// configured generator against it. A missing, unreadable, or
	// unparsable file yields an empty list, not an error.
	GenerateMutations(ctx context.Context, file m.Path) ([]m.Mutation, error)

	// ApplyMutation backs up the live file and writes the mutated content
	// over it. All-or-nothing: on any failure the live file stays
	// byte-identical to before the call.
	ApplyMutation(ctx context.Context, mutation m.Mutation) error

	// RestoreOriginal copies the backup back over the live file and
	// removes the backup.
	RestoreOriginal(ctx context.Context, file m.Path) error

	// RunTests executes the configured test command bounded by the config
	// timeout. true means exit code 0 (mutation undetected); false means
	// tests failed (mutation detected). Timeout and launch failures are
	// errors.
	RunTests(ctx context.Context) (bool, error)

	// Run evaluates every mutation across all target files sequentially
	// and returns the aggregated score. Per-mutation failures are
	// absorbed; only infrastructure failures return an error.
	Run(ctx context.Context) (m.MutationScore, error)

	// GenerateReport renders a deterministic human-readable summary of a
	// score.
	GenerateReport(score m.MutationScore) string
}

type engine struct {
	config     m.MutationConfig
	generators GeneratorSet
	parser     adapter.GoFileAdapter
	fs         adapter.SourceFSAdapter
	runner     adapter.TestRunnerAdapter
	ui         controller.UI
}

// NewEngine constructs an Engine. The config must come from
// NewMutationConfig; passing a hand-built invalid config is API misuse and
// panics. A nil generators table falls back to the default set; ui may be
// nil.
func NewEngine(
	config m.MutationConfig,
	generators GeneratorSet,
	parser adapter.GoFileAdapter,
	fs adapter.SourceFSAdapter,
	runner adapter.TestRunnerAdapter,
	ui controller.UI,
) Engine {
	if err := config.Validate(); err != nil {
		panic(fmt.Sprintf("domain: invalid mutation config: %v", err))
	}

	if generators == nil {
		generators = NewGeneratorSet()
	}

	return &engine{
		config:     config,
		generators: generators,
		parser:     parser,
		fs:         fs,
		runner:     runner,
		ui:         ui,
	}
}

func (e *engine) GenerateMutations(ctx context.Context, file m.Path) ([]m.Mutation, error) {
	mutations, err := e.generateForFile(ctx, file)
	if err != nil {
		slog.Warn("no mutations for file", "file", file, "error", err)

		return []m.Mutation{}, nil
	}

	assignIDs(mutations)

	return mutations, nil
}

// generateForFile produces the unnumbered mutations for one file, in
// category order then source order.
func (e *engine) generateForFile(ctx context.Context, file m.Path) ([]m.Mutation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := e.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	fset := token.NewFileSet()

	parsed, err := e.parser.Parse(fset, string(file), content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	hash := adapter.HashBytes(content)

	var mutations []m.Mutation

	for _, mutationType := range m.AllMutationTypes {
		if !e.config.Includes(mutationType) {
			continue
		}

		gen, ok := e.generators[mutationType]
		if !ok {
			continue
		}

		mutations = append(mutations, collectMutations(gen, parsed, fset, content, file)...)
	}

	for i := range mutations {
		mutations[i].SourceHash = hash
	}

	return mutations, nil
}

// collectMutations walks the AST in source order and applies one generator
// to every node.
func collectMutations(gen Generator, parsed *ast.File, fset *token.FileSet, content []byte, file m.Path) []m.Mutation {
	var mutations []m.Mutation

	ast.Inspect(parsed, func(n ast.Node) bool {
		if n == nil {
			return true
		}

		// Import paths are string literals, but mutating them probes the
		// build system rather than the tests.
		if _, ok := n.(*ast.ImportSpec); ok {
			return false
		}

		mutations = append(mutations, gen(n, fset, content, file)...)

		return true
	})

	return mutations
}

// assignIDs numbers mutations per category over the whole slice, so IDs are
// unique and stable within a run.
func assignIDs(mutations []m.Mutation) {
	counters := make(map[m.MutationType]int)

	for i := range mutations {
		counters[mutations[i].Type]++
		mutations[i].ID = fmt.Sprintf("%s_%d", strings.ToUpper(string(mutations[i].Type)), counters[mutations[i].Type])
	}
}

// generateAll concatenates mutations across all target files in file order.
// When the advisory parallel flag is set the per-file generation (read-only)
// fans out, but results are still concatenated in file order so the overall
// ordering stays deterministic.
func (e *engine) generateAll(ctx context.Context) ([]m.Mutation, error) {
	perFile := make([][]m.Mutation, len(e.config.TargetFiles))
	readable := make([]bool, len(e.config.TargetFiles))

	generate := func(ctx context.Context, i int, file m.Path) {
		mutations, err := e.generateForFile(ctx, file)
		if err != nil {
			slog.Warn("no mutations for file", "file", file, "error", err)
			return
		}

		perFile[i] = mutations
		readable[i] = true
	}

	if e.config.Parallel {
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(runtime.GOMAXPROCS(0))

		for i, file := range e.config.TargetFiles {
			i, file := i, file
			group.Go(func() error {
				generate(groupCtx, i, file)
				return nil
			})
		}

		if err := group.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, file := range e.config.TargetFiles {
			generate(ctx, i, file)
		}
	}

	anyReadable := false
	for _, ok := range readable {
		anyReadable = anyReadable || ok
	}

	if !anyReadable {
		return nil, fmt.Errorf("none of the %d target files could be read and parsed", len(e.config.TargetFiles))
	}

	var all []m.Mutation
	for _, mutations := range perFile {
		all = append(all, mutations...)
	}

	assignIDs(all)

	return all, nil
}

func (e *engine) ApplyMutation(ctx context.Context, mutation m.Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(mutation.MutatedContent) == 0 {
		return fmt.Errorf("mutation %s carries no mutated content", mutation.ID)
	}

	content, err := e.fs.ReadFile(mutation.SourceFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", mutation.SourceFile, err)
	}

	if adapter.HashBytes(content) != mutation.SourceHash {
		return fmt.Errorf("%s changed since mutation %s was generated", mutation.SourceFile, mutation.ID)
	}

	if err := e.parser.VerifyParses(string(mutation.SourceFile), mutation.MutatedContent); err != nil {
		return fmt.Errorf("mutated content for %s does not parse: %w", mutation.ID, err)
	}

	perm := os.FileMode(0o600)
	if info, statErr := e.fs.FileInfo(mutation.SourceFile); statErr == nil {
		perm = info.Mode().Perm()
	}

	if _, err := e.fs.BackupFile(mutation.SourceFile); err != nil {
		return fmt.Errorf("backup %s: %w", mutation.SourceFile, err)
	}

	if err := e.fs.WriteFile(mutation.SourceFile, mutation.MutatedContent, perm); err != nil {
		if restoreErr := e.fs.RestoreFile(mutation.SourceFile); restoreErr != nil {
			slog.Error("failed to restore after write failure", "file", mutation.SourceFile, "error", restoreErr)
		}

		return fmt.Errorf("write mutated %s: %w", mutation.SourceFile, err)
	}

	return nil
}

func (e *engine) RestoreOriginal(ctx context.Context, file m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return e.fs.RestoreFile(file)
}

func (e *engine) RunTests(ctx context.Context) (bool, error) {
	timeout := time.Duration(e.config.TimeoutSeconds) * time.Second

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	passed, output, err := e.runner.RunCommand(runCtx, e.config.TestCommand)
	if err != nil {
		return false, err
	}

	slog.Debug("test command finished", "passed", passed, "output_bytes", len(output))

	return passed, nil
}

func (e *engine) Run(ctx context.Context) (m.MutationScore, error) {
	if e.config.Parallel {
		slog.Info("parallel flag is advisory: mutations are evaluated sequentially to keep the live file and its backup race-free")
	}

	mutations, err := e.generateAll(ctx)
	if err != nil {
		return m.MutationScore{}, err
	}

	if len(mutations) == 0 {
		// Nothing to evaluate: vacuously full coverage.
		return m.MutationScore{Score: 1.0}, nil
	}

	if e.ui != nil {
		if err := e.ui.Start(ctx, len(mutations)); err != nil {
			return m.MutationScore{}, fmt.Errorf("start ui: %w", err)
		}

		defer e.ui.Close(ctx)
	}

	results, err := pkg.NewFileSpill[m.MutationResult]()
	if err != nil {
		return m.MutationScore{}, fmt.Errorf("create result spill: %w", err)
	}

	defer func() {
		_ = results.Close()
	}()

	skipped := 0

	for i, mutation := range mutations {
		if e.ui != nil {
			e.ui.MutationStarted(ctx, mutation, i+1)
		}

		result, evalErr := e.evaluateMutation(ctx, mutation)
		if evalErr != nil {
			skipped++

			slog.Warn("skipping mutation", "id", mutation.ID, "file", mutation.SourceFile, "error", evalErr)

			if e.ui != nil {
				e.ui.MutationSkipped(ctx, mutation, evalErr)
			}

			continue
		}

		if err := results.Append(result); err != nil {
			return m.MutationScore{}, fmt.Errorf("record result for %s: %w", mutation.ID, err)
		}

		if e.ui != nil {
			e.ui.MutationTested(ctx, result)
		}
	}

	score, err := scoreFromResults(results)
	if err != nil {
		return m.MutationScore{}, err
	}

	score.MutationsSkipped = skipped

	return score, nil
}

// evaluateMutation runs one apply/test/restore cycle. Restore is deferred so
// an applied mutation is never left in place, whatever the test run does.
func (e *engine) evaluateMutation(ctx context.Context, mutation m.Mutation) (m.MutationResult, error) {
	if err := e.ApplyMutation(ctx, mutation); err != nil {
		// Apply is all-or-nothing, but a stray backup from a failed
		// restore still needs a best-effort cleanup.
		if e.fs.HasBackup(mutation.SourceFile) {
			if restoreErr := e.fs.RestoreFile(mutation.SourceFile); restoreErr != nil {
				slog.Error("failed to restore after apply failure", "file", mutation.SourceFile, "error", restoreErr)
			}
		}

		return m.MutationResult{}, fmt.Errorf("apply: %w", err)
	}

	var (
		passed  bool
		testErr error
		elapsed time.Duration
	)

	func() {
		defer func() {
			if err := e.fs.RestoreFile(mutation.SourceFile); err != nil {
				slog.Error("failed to restore after test run", "file", mutation.SourceFile, "error", err)
			}
		}()

		start := time.Now()
		passed, testErr = e.RunTests(ctx)
		elapsed = time.Since(start)
	}()

	if testErr != nil {
		return m.MutationResult{}, fmt.Errorf("test: %w", testErr)
	}

	return m.MutationResult{
		MutationID:    mutation.ID,
		Type:          mutation.Type,
		SourceFile:    mutation.SourceFile,
		Line:          mutation.Line,
		Original:      mutation.Original,
		Mutated:       mutation.Mutated,
		TestsPassed:   passed,
		TestsFailed:   !passed,
		ExecutionTime: elapsed,
	}, nil
}

func (e *engine) GenerateReport(score m.MutationScore) string {
	return GenerateReport(score)
}

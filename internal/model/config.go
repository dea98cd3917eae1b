package model

import (
	"fmt"
	"strings"
)

// Timeout bounds for a single test-command invocation, in seconds.
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 3600
)

// MutationConfig holds validated run parameters for one engine run. Build it
// with NewMutationConfig; a zero value is not usable.
type MutationConfig struct {
	TargetFiles    []Path
	TestCommand    string
	MutationTypes  []MutationType
	TimeoutSeconds int

	// Parallel is advisory only. The run loop stays strictly sequential
	// because concurrent workers would race on the live file and its
	// backup; only the read-only generation stage fans out.
	Parallel bool
}

// NewMutationConfig validates the run parameters and returns a usable config.
// An empty mutationTypes slice resolves to all supported categories.
func NewMutationConfig(targetFiles []Path, testCommand string, mutationTypes []MutationType, timeoutSeconds int, parallel bool) (MutationConfig, error) {
	cfg := MutationConfig{
		TargetFiles:    targetFiles,
		TestCommand:    strings.TrimSpace(testCommand),
		MutationTypes:  resolveMutationTypes(mutationTypes),
		TimeoutSeconds: timeoutSeconds,
		Parallel:       parallel,
	}

	if err := cfg.Validate(); err != nil {
		return MutationConfig{}, err
	}

	return cfg, nil
}

// Validate checks the config invariants. NewMutationConfig calls it; the
// engine constructor calls it again to reject hand-built configs.
func (c MutationConfig) Validate() error {
	if len(c.TargetFiles) == 0 {
		return fmt.Errorf("target files must not be empty")
	}

	for _, file := range c.TargetFiles {
		if strings.TrimSpace(string(file)) == "" {
			return fmt.Errorf("target file path must not be blank")
		}
	}

	if c.TestCommand == "" {
		return fmt.Errorf("test command must not be empty")
	}

	if len(c.MutationTypes) == 0 {
		return fmt.Errorf("mutation types must not be empty")
	}

	for _, mutationType := range c.MutationTypes {
		if !mutationType.Known() {
			return fmt.Errorf("unsupported mutation type: %s", mutationType)
		}
	}

	if c.TimeoutSeconds < MinTimeoutSeconds || c.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("timeout must be between %d and %d seconds, got %d", MinTimeoutSeconds, MaxTimeoutSeconds, c.TimeoutSeconds)
	}

	return nil
}

// Includes reports whether the config selects the given category.
func (c MutationConfig) Includes(mutationType MutationType) bool {
	for _, t := range c.MutationTypes {
		if t == mutationType {
			return true
		}
	}

	return false
}

func resolveMutationTypes(mutationTypes []MutationType) []MutationType {
	if len(mutationTypes) == 0 {
		resolved := make([]MutationType, len(AllMutationTypes))
		copy(resolved, AllMutationTypes)

		return resolved
	}

	return mutationTypes
}

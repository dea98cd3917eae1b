package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/varmint/internal/model"
)

// ScoreFileName is the file a run's score is saved under inside the reports
// directory.
const ScoreFileName = "score.yaml"

// ReportStore persists run scores so they can be viewed later or consumed by
// external summarizers.
type ReportStore interface {
	SaveScore(dir m.Path, score m.MutationScore) error
	LoadScore(dir m.Path) (m.MutationScore, error)
}

// YAMLReportStore stores scores as YAML files on the local filesystem.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveScore writes the score to dir/score.yaml, creating dir if needed.
func (s *YAMLReportStore) SaveScore(dir m.Path, score m.MutationScore) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	content, err := yaml.Marshal(score)
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}

	path := filepath.Join(string(dir), ScoreFileName)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write score %s: %w", path, err)
	}

	return nil
}

// LoadScore reads the score back from dir/score.yaml.
func (s *YAMLReportStore) LoadScore(dir m.Path) (m.MutationScore, error) {
	path := filepath.Join(string(dir), ScoreFileName)

	content, err := os.ReadFile(path)
	if err != nil {
		return m.MutationScore{}, fmt.Errorf("read score %s: %w", path, err)
	}

	var score m.MutationScore
	if err := yaml.Unmarshal(content, &score); err != nil {
		return m.MutationScore{}, fmt.Errorf("unmarshal score %s: %w", path, err)
	}

	return score, nil
}

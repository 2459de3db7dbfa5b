package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Report summarizes one run.
type Report struct {
	Language          string    `yaml:"language"`
	Mode              string    `yaml:"mode"`
	Input             string    `yaml:"input"`
	WordsOutput       string    `yaml:"words_output"`
	DefinitionsOutput string    `yaml:"definitions_output,omitempty"`
	Stats             Stats     `yaml:"stats"`
	StartedAt         time.Time `yaml:"started_at"`
	FinishedAt        time.Time `yaml:"finished_at"`
}

func NewReport(languageCode, mode string, job Job, stats Stats, startedAt, finishedAt time.Time) Report {
	return Report{
		Language:          languageCode,
		Mode:              mode,
		Input:             job.InputPath,
		WordsOutput:       job.WordsOutputPath,
		DefinitionsOutput: job.DefinitionsOutputPath,
		Stats:             stats,
		StartedAt:         startedAt,
		FinishedAt:        finishedAt,
	}
}

// WriteReports writes reports as one YAML document per report.
func WriteReports(path string, reports []Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	for _, report := range reports {
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/wordcleaner/internal/config"
	"github.com/at-ishikawa/wordcleaner/internal/language"
	"github.com/at-ishikawa/wordcleaner/internal/pipeline"
	"github.com/at-ishikawa/wordcleaner/internal/wordlist"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func pipelineOptions(cfg config.PipelineConfig, chunkSize int) pipeline.Options {
	return pipeline.Options{
		ChunkSize:      chunkSize,
		ChunkDelay:     cfg.ChunkDelay,
		MaxRetries:     cfg.MaxRetries,
		RetryBaseDelay: cfg.RetryBaseDelay,
	}
}

// resolvePath returns override when it is set, otherwise the template path of code.
func resolvePath(cfg config.WordListsConfig, template string, code language.Code, override string) string {
	if override != "" {
		return override
	}
	return wordlist.ResolvePath(cfg.Directory, template, code.String())
}

func parseLanguages(args []string) ([]language.Code, error) {
	if len(args) == 0 {
		return language.Supported, nil
	}
	codes := make([]language.Code, 0, len(args))
	for _, arg := range args {
		code, err := language.Parse(arg)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

type reportRecorder struct {
	path    string
	reports []pipeline.Report
}

func (r *reportRecorder) add(code language.Code, mode string, job pipeline.Job, stats pipeline.Stats, startedAt time.Time) {
	if r.path == "" {
		return
	}
	r.reports = append(r.reports, pipeline.NewReport(code.String(), mode, job, stats, startedAt, time.Now()))
}

func (r *reportRecorder) write() error {
	if r.path == "" {
		return nil
	}
	if err := pipeline.WriteReports(r.path, r.reports); err != nil {
		return fmt.Errorf("pipeline.WriteReports > %w", err)
	}
	return nil
}

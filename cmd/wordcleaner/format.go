package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcleaner/internal/pipeline"
	"github.com/at-ishikawa/wordcleaner/internal/wordformat"
)

func newFormatCommand() *cobra.Command {
	var (
		inputPath  string
		outputPath string
		reportPath string
		options    pipeline.FormatCheckOptions
	)

	command := &cobra.Command{
		Use:   "format [language...]",
		Short: "Filter hand-picked word lists by length, alphabet and shape",
		Long:  "Filter hand-picked word lists by length, alphabet and shape. Every supported language is filtered when no language is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := parseLanguages(args)
			if err != nil {
				return err
			}
			if (inputPath != "" || outputPath != "") && len(codes) != 1 {
				return errors.New("--input and --output require exactly one language")
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			validator := wordformat.NewValidator(cfg.Format.MinLength, cfg.Format.MaxLength)
			runner := pipeline.New(pipelineOptions(cfg.Pipeline, cfg.Pipeline.ChunkSize), slog.Default(), cmd.OutOrStdout())
			recorder := reportRecorder{path: reportPath}

			for _, code := range codes {
				job := pipeline.Job{
					Name:            "format " + code.String(),
					InputPath:       resolvePath(cfg.WordLists, cfg.WordLists.FormatInput, code, inputPath),
					WordsOutputPath: resolvePath(cfg.WordLists, cfg.WordLists.FormatOutput, code, outputPath),
					Check:           pipeline.FormatCheck(validator, code.Alphabet(), options),
				}

				startedAt := time.Now()
				stats, err := runner.Run(cmd.Context(), job)
				if err != nil {
					return fmt.Errorf("pipeline.Run(%s) > %w", job.Name, err)
				}
				recorder.add(code, "format", job, stats, startedAt)
			}
			return recorder.write()
		},
	}

	flags := command.Flags()
	flags.StringVar(&inputPath, "input", "", "input word list, overrides the configured path")
	flags.StringVar(&outputPath, "output", "", "output word list, overrides the configured path")
	flags.StringVar(&reportPath, "report", "", "write a YAML run report to this path")
	flags.BoolVar(&options.FoldDiacritics, "fold-diacritics", false, "fold accents and ligatures before validating")
	flags.BoolVar(&options.RejectVowelHeavy, "reject-vowel-heavy", false, "reject words where vowels are the majority")
	return command
}

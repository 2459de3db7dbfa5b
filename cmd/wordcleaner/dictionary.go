package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary/providers"
	"github.com/at-ishikawa/wordcleaner/internal/language"
	"github.com/at-ishikawa/wordcleaner/internal/pipeline"
)

func newDictionaryCommand() *cobra.Command {
	var (
		inputPath             string
		outputPath            string
		definitionsOutputPath string
		reportPath            string
	)

	command := &cobra.Command{
		Use:   "dictionary <language> [chunk_size]",
		Short: "Keep the words an online dictionary knows, with a short definition",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a language is required. Usage: wordcleaner dictionary <language> [chunk_size]")
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := language.Parse(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			chunkSize := cfg.Pipeline.ChunkSize
			if len(args) == 2 {
				chunkSize, err = strconv.Atoi(args[1])
				if err != nil || chunkSize <= 0 {
					return fmt.Errorf("chunk size must be a positive integer: %q", args[1])
				}
			}

			set, err := providers.New(cfg.Dictionaries, slog.Default())
			if err != nil {
				return fmt.Errorf("providers.New > %w", err)
			}
			defer func() {
				_ = set.Close()
			}()
			provider, err := set.Provider(code)
			if err != nil {
				return err
			}

			job := pipeline.Job{
				Name:                  "dictionary " + code.String(),
				InputPath:             resolvePath(cfg.WordLists, cfg.WordLists.DictionaryInput, code, inputPath),
				WordsOutputPath:       resolvePath(cfg.WordLists, cfg.WordLists.DictionaryWordsOutput, code, outputPath),
				DefinitionsOutputPath: resolvePath(cfg.WordLists, cfg.WordLists.DictionaryDefinitionsOutput, code, definitionsOutputPath),
				Check:                 pipeline.DictionaryCheck(provider),
			}

			recorder := reportRecorder{path: reportPath}
			startedAt := time.Now()
			runner := pipeline.New(pipelineOptions(cfg.Pipeline, chunkSize), slog.Default(), cmd.OutOrStdout())
			stats, err := runner.Run(cmd.Context(), job)
			if err != nil {
				return fmt.Errorf("pipeline.Run(%s) > %w", job.Name, err)
			}
			recorder.add(code, "dictionary", job, stats, startedAt)
			return recorder.write()
		},
	}

	flags := command.Flags()
	flags.StringVar(&inputPath, "input", "", "input word list, overrides the configured path")
	flags.StringVar(&outputPath, "output", "", "validated word list, overrides the configured path")
	flags.StringVar(&definitionsOutputPath, "definitions-output", "", "words with definitions, overrides the configured path")
	flags.StringVar(&reportPath, "report", "", "write a YAML run report to this path")
	return command
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcleaner/internal/dictionary"
	"github.com/at-ishikawa/wordcleaner/internal/dictionary/providers"
	"github.com/at-ishikawa/wordcleaner/internal/language"
	"github.com/at-ishikawa/wordcleaner/internal/pipeline"
)

func newLookupCommand() *cobra.Command {
	code := language.English

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a single word in the dictionary of a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
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

			result := dictionary.Safe(cmd.Context(), provider, word)
			if result.Err != nil {
				return fmt.Errorf("%s dictionary > %w", code, result.Err)
			}

			out := cmd.OutOrStdout()
			if !result.Valid {
				_, _ = color.New(color.FgRed).Fprintf(out, "%s was not found in the %s dictionary\n", word, code)
				return nil
			}
			_, _ = color.New(color.FgGreen).Fprintln(out, pipeline.DefinitionLine(strings.ToUpper(result.Word), result.Definition))
			return nil
		},
	}
	command.Flags().VarP(&code, "language", "l", fmt.Sprintf("language of the word. Possible values are %v", language.Supported))
	return command
}

package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	WordLists    WordListsConfig    `mapstructure:"word_lists"`
	Format       FormatConfig       `mapstructure:"format"`
	Pipeline     PipelineConfig     `mapstructure:"pipeline"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
}

// WordListsConfig holds path templates. {LANGUAGE} is replaced by the language code and
// relative paths are resolved under Directory.
type WordListsConfig struct {
	Directory                   string `mapstructure:"directory"`
	FormatInput                 string `mapstructure:"format_input" validate:"required,language_template"`
	FormatOutput                string `mapstructure:"format_output" validate:"required,language_template"`
	DictionaryInput             string `mapstructure:"dictionary_input" validate:"required,language_template"`
	DictionaryWordsOutput       string `mapstructure:"dictionary_words_output" validate:"required,language_template"`
	DictionaryDefinitionsOutput string `mapstructure:"dictionary_definitions_output" validate:"required,language_template"`
}

type FormatConfig struct {
	MinLength int `mapstructure:"min_length" validate:"min=1"`
	MaxLength int `mapstructure:"max_length" validate:"gtefield=MinLength"`
}

type PipelineConfig struct {
	ChunkSize      int           `mapstructure:"chunk_size" validate:"min=1"`
	MaxRetries     int           `mapstructure:"max_retries" validate:"min=0"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" validate:"gte=0"`
	ChunkDelay     time.Duration `mapstructure:"chunk_delay" validate:"gte=0"`
}

type DictionariesConfig struct {
	DefinitionMaxWords int            `mapstructure:"definition_max_words" validate:"min=1"`
	RequestTimeout     time.Duration  `mapstructure:"request_timeout" validate:"gt=0"`
	CacheDirectory     string         `mapstructure:"cache_directory"`
	VanDale            EndpointConfig `mapstructure:"vandale"`
	DWDS               EndpointConfig `mapstructure:"dwds"`
	FreeDictionary     EndpointConfig `mapstructure:"freedictionary"`
	RapidAPI           RapidAPIConfig `mapstructure:"rapidapi"`
}

type EndpointConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type RapidAPIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	Host    string `mapstructure:"host"`
	Key     string `mapstructure:"key"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordcleaner")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("word_lists.directory", "word-lists")
	v.SetDefault("word_lists.format_input", "{LANGUAGE}/hand-filtered/{LANGUAGE}-5-words.txt")
	v.SetDefault("word_lists.format_output", "{LANGUAGE}/hand-filtered/{LANGUAGE}-5-filtered.txt")
	v.SetDefault("word_lists.dictionary_input", "{LANGUAGE}/{LANGUAGE}-words-clean.txt")
	v.SetDefault("word_lists.dictionary_words_output", "{LANGUAGE}/{LANGUAGE}-words-dictionary-validated.txt")
	v.SetDefault("word_lists.dictionary_definitions_output", "{LANGUAGE}/{LANGUAGE}-words-with-definitions.txt")
	v.SetDefault("format.min_length", 5)
	v.SetDefault("format.max_length", 5)
	v.SetDefault("pipeline.chunk_size", 50)
	v.SetDefault("pipeline.max_retries", 3)
	v.SetDefault("pipeline.retry_base_delay", 100*time.Millisecond)
	v.SetDefault("pipeline.chunk_delay", time.Duration(0))
	v.SetDefault("dictionaries.definition_max_words", 16)
	v.SetDefault("dictionaries.request_timeout", 10*time.Second)
	v.SetDefault("dictionaries.cache_directory", "")

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("dictionaries.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

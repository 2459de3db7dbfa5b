package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/wordcleaner/internal/wordlist"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("language_template", hasLanguagePlaceholder); err != nil {
		return nil, nil, fmt.Errorf("failed to register language_template validation: %w", err)
	}
	if err := validate.RegisterTranslation("language_template", trans, func(ut ut.Translator) error {
		return ut.Add("language_template", "{0} must contain {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("language_template", strings.TrimPrefix(fe.Namespace(), "Config."), wordlist.Placeholder)
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register language_template translation: %w", err)
	}

	return validate, trans, nil
}

// Without the placeholder every language would read and write the same file.
func hasLanguagePlaceholder(fl validator.FieldLevel) bool {
	return strings.Contains(fl.Field().String(), wordlist.Placeholder)
}

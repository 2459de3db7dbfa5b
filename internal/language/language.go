package language

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Code identifies one of the word list languages.
type Code string

const (
	Dutch   Code = "nl"
	German  Code = "de"
	English Code = "en"
	French  Code = "fr"
)

// ErrUnsupported is returned when a language code is not one of Supported.
var ErrUnsupported = errors.New("unsupported language")

var (
	_ pflag.Value = (*Code)(nil)

	// Supported lists the languages in the order the format command walks them.
	Supported = []Code{Dutch, German, English, French}
)

// Parse converts a command line argument into a Code.
func Parse(value string) (Code, error) {
	normalized := Code(strings.ToLower(strings.TrimSpace(value)))
	for _, code := range Supported {
		if normalized == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q, possible values are %v", ErrUnsupported, value, Supported)
}

func (c *Code) Set(val string) error {
	code, err := Parse(val)
	if err != nil {
		return err
	}
	*c = code
	return nil
}

func (c Code) String() string {
	return string(c)
}

func (c *Code) Type() string {
	return "language"
}

package language

// NormalCharacters are the letters every language accepts.
const NormalCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// specialCharacters are the uppercase letters a language accepts on top of A-Z.
var specialCharacters = map[Code]string{
	Dutch:   "ĲÉËÏÖÜ",
	// strings.ToUpper keeps ß as is, so both forms are listed.
	German:  "ÄÖÜẞß",
	English: "",
	French:  "ÉÈÊËÀÂÇÎÏÔÛÙÜŸŒÆ",
}

// Alphabet is the set of uppercase runes a word may consist of.
type Alphabet map[rune]struct{}

// NewAlphabet builds an Alphabet from the runes of each given string.
func NewAlphabet(chars ...string) Alphabet {
	alphabet := make(Alphabet)
	for _, s := range chars {
		for _, r := range s {
			alphabet[r] = struct{}{}
		}
	}
	return alphabet
}

func (a Alphabet) Contains(r rune) bool {
	_, ok := a[r]
	return ok
}

// NormalAlphabet accepts only A-Z.
func NormalAlphabet() Alphabet {
	return NewAlphabet(NormalCharacters)
}

// Alphabet returns A-Z plus the special characters of the language.
func (c Code) Alphabet() Alphabet {
	return NewAlphabet(NormalCharacters, specialCharacters[c])
}

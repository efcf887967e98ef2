package report

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

var ErrUnsupportedLanguage = errors.New("unsupported report language")

// supported lists the report languages. The first entry is the source
// language of every label.
var supported = []language.Tag{language.English, language.Polish}

var matcher = language.NewMatcher(supported)

var dictionaries = map[language.Tag]map[string]string{
	language.Polish: {
		"Brazil":      "Brazylia",
		"China":       "Chiny",
		"Europe":      "Europa",
		"India":       "Indie",
		"Israel":      "Izrael",
		"Japan":       "Japonia",
		"North Korea": "Korea Północna",
		"South Korea": "Korea Południowa",
		"USSR/Russia": "ZSRR/Rosja",
		"Long March":  "Długi Marsz",

		"Launches":                             "Starty",
		"All Successful Orbital Launches":      "Wszystkie udane starty orbitalne",
		"Successful Launches":                  "Udane starty",
		"Total or Partial Failures":            "Całkowite i częściowe porażki",
		"Successes and Failures":               "Sukcesy i porażki",
		"Launches of Selected Rocket Families": "Starty wybranych rodzin rakiet",

		"↓ This line marks a hundred launches per year.": "↓ Ta linia określa granicę stu startów rocznie.",
		"← This line marks the end of the Cold War.":     "← Ta linia wskazuje koniec zimnej wojny.",
	},
}

// Translator renders report labels in one language. Labels without a
// translation are returned unchanged.
type Translator struct {
	tag  language.Tag
	dict map[string]string
}

// NewTranslator returns the translator for the supported language closest to
// lang, a BCP 47 tag such as "pl" or "en-GB".
func NewTranslator(lang string) (Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return Translator{}, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, lang, err)
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Translator{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	matched := supported[idx]
	return Translator{tag: matched, dict: dictionaries[matched]}, nil
}

// Languages returns the supported report languages.
func Languages() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Language returns the tag the translator renders.
func (t Translator) Language() language.Tag {
	return t.tag
}

// T translates a label.
func (t Translator) T(label string) string {
	if s, ok := t.dict[label]; ok {
		return s
	}
	return label
}

package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vaultpass/credgen/internal/random"
)

// CaseMode is the casing applied to each word of a username.
type CaseMode int

const (
	CaseUnchanged CaseMode = iota
	CaseCapitalized
	CaseLower
	CaseUpper
	CaseRandom
)

// ResolveCaseMode folds the three case flags into one mode. Capitalized wins,
// then both lower and upper (random per character), then a single case.
func ResolveCaseMode(capitalized, lower, upper bool) CaseMode {
	switch {
	case capitalized:
		return CaseCapitalized
	case lower && upper:
		return CaseRandom
	case lower:
		return CaseLower
	case upper:
		return CaseUpper
	default:
		return CaseUnchanged
	}
}

func (m CaseMode) String() string {
	switch m {
	case CaseCapitalized:
		return "capitalized"
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseRandom:
		return "random"
	default:
		return "unchanged"
	}
}

// apply transforms word. Casers are stateful, so a fresh one is built per call.
func (m CaseMode) apply(word string, src random.Source) string {
	switch m {
	case CaseCapitalized:
		_, size := utf8.DecodeRuneInString(word)
		return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
	case CaseLower:
		return cases.Lower(language.Und).String(word)
	case CaseUpper:
		return cases.Upper(language.Und).String(word)
	case CaseRandom:
		var b strings.Builder
		b.Grow(len(word))
		for _, r := range word {
			if src.Float64() > 0.5 {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
		}
		return b.String()
	default:
		return word
	}
}

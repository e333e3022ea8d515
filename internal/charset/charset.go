// Package charset assembles the alphabet a composer draws from.
package charset

import "strings"

const (
	Lowercase    = "abcdefghijklmnopqrstuvwxyz"
	Uppercase    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits       = "0123456789"
	Symbols      = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	Letters      = Lowercase + Uppercase
	Alphanumeric = Letters + Digits

	// UsernameSpecials is the special class used by username character mode.
	UsernameSpecials = "_-"

	// Similar characters are easy to confuse with one another when read.
	Similar = "il1Lo0O"
	// Ambiguous symbols are often mangled by terminals, shells and fonts.
	Ambiguous = "{}[]()/\\'\"~,;.<>"
)

// Options selects the classes of an alphabet.
type Options struct {
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool

	// SymbolSet overrides the symbol class. Empty means Symbols.
	SymbolSet string
	// Custom replaces every class flag when non-empty.
	Custom string
	// Fallback is used when neither Custom nor a flag yields characters.
	// Empty means Alphanumeric.
	Fallback string

	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// Base returns the unfiltered alphabet for opts, or "" when nothing was selected.
func Base(opts Options) string {
	if opts.Custom != "" {
		return opts.Custom
	}

	var b strings.Builder
	if opts.Lowercase {
		b.WriteString(Lowercase)
	}
	if opts.Uppercase {
		b.WriteString(Uppercase)
	}
	if opts.Numbers {
		b.WriteString(Digits)
	}
	if opts.Symbols {
		if opts.SymbolSet != "" {
			b.WriteString(opts.SymbolSet)
		} else {
			b.WriteString(Symbols)
		}
	}
	return b.String()
}

// Build resolves the working alphabet: custom set, then class flags, then the
// fallback, with the exclusion filters applied last. The result may be empty
// when the filters remove every character; callers decide how to recover.
func Build(opts Options) string {
	set := Base(opts)
	if set == "" {
		set = opts.Fallback
		if set == "" {
			set = Alphanumeric
		}
	}
	return Filter(set, opts.ExcludeSimilar, opts.ExcludeAmbiguous)
}

// Filter removes the similar and/or ambiguous characters from set, keeping order.
func Filter(set string, similar, ambiguous bool) string {
	if !similar && !ambiguous {
		return set
	}
	return strings.Map(func(r rune) rune {
		if similar && strings.ContainsRune(Similar, r) {
			return -1
		}
		if ambiguous && strings.ContainsRune(Ambiguous, r) {
			return -1
		}
		return r
	}, set)
}

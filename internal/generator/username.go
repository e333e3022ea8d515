package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/credgen/internal/charset"
	"github.com/vaultpass/credgen/internal/random"
	"github.com/vaultpass/credgen/internal/words"
)

// Generator composes usernames and passwords. It holds only read-only word
// tables; all randomness comes from the Source passed to each call.
type Generator struct {
	words words.Table
}

// New returns a Generator over the given word table.
func New(table words.Table) *Generator {
	return &Generator{words: table}
}

// UsernameOptions configures one username composition. Zero numeric values
// mean "unset".
type UsernameOptions struct {
	Length    int
	MaxLength int

	Case        CaseMode
	Lowercase   bool
	Uppercase   bool
	Numbers     bool
	SpecialChar bool

	Separator string
	WordCount int
	Prefix    string
	Suffix    string
	Theme     string

	AddRandomNumbers bool
	NumberCount      int
	RandomPrefix     bool
	RandomSuffix     bool
}

// Username composes a username. It never fails; pathological inputs produce
// possibly degenerate strings.
func (g *Generator) Username(src random.Source, opts UsernameOptions) string {
	name, _ := g.ComposeUsername(src, opts)
	return name
}

// ComposeUsername is Username that also reports whether the final cut to the
// maximum length removed anything.
func (g *Generator) ComposeUsername(src random.Source, opts UsernameOptions) (name string, truncated bool) {
	supplier := words.NewSupplier(g.words, src)

	var b strings.Builder

	if opts.RandomPrefix {
		b.WriteString(supplier.NextPrefix())
		b.WriteString(opts.Separator)
	}
	if opts.Prefix != "" {
		b.WriteString(opts.Prefix)
		b.WriteString(opts.Separator)
	}

	if opts.WordCount > 0 {
		parts := make([]string, 0, opts.WordCount)
		for i := range opts.WordCount {
			parts = append(parts, opts.Case.apply(g.pickWord(supplier, src, opts.Theme, i), src))
		}
		b.WriteString(strings.Join(parts, opts.Separator))
	} else {
		set := charset.Build(charset.Options{
			Lowercase: opts.Lowercase,
			Uppercase: opts.Uppercase,
			Numbers:   opts.Numbers,
			Symbols:   opts.SpecialChar,
			SymbolSet: charset.UsernameSpecials,
			Fallback:  charset.Lowercase,
		})
		for range opts.Length {
			b.WriteByte(random.Pick(src, set))
		}
	}

	if opts.AddRandomNumbers || (opts.Numbers && opts.WordCount > 0) {
		n := opts.NumberCount
		if n <= 0 {
			n = src.IntN(4) + 1
		}
		for range n {
			b.WriteByte(random.Pick(src, charset.Digits))
		}
	}

	if opts.Suffix != "" {
		b.WriteString(opts.Separator)
		b.WriteString(opts.Suffix)
	}
	if opts.RandomSuffix {
		b.WriteString(opts.Separator)
		b.WriteString(supplier.NextSuffix())
	}

	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = opts.Length
	}
	full := b.String()
	name = truncate(full, maxLength)
	return name, len(name) < len(full)
}

func (g *Generator) pickWord(s *words.Supplier, src random.Source, theme string, i int) string {
	switch {
	case theme != "" && i < 2:
		adj, noun := s.ThemedPair(theme)
		if i == 0 {
			return adj
		}
		return noun
	case i%3 == 0:
		if src.Float64() > 0.7 {
			return s.NextTechTerm()
		}
		return s.NextAdjective()
	case i%2 == 0:
		return s.NextAdjective()
	default:
		return s.NextNoun()
	}
}

// truncate keeps the first n characters of s. n <= 0 disables it.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

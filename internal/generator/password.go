package generator

import (
	"github.com/vaultpass/credgen/internal/charset"
	"github.com/vaultpass/credgen/internal/random"
)

const (
	consonants         = "bcdfghjklmnpqrstvwxyz"
	vowels             = "aeiou"
	pronounceableMarks = "!@#$%^&*"

	// maxRepeatAttempts bounds the resampling loop of the no-repeat constraint.
	maxRepeatAttempts = 100
	// minEnforcedLength is the shortest password that gets class minimums.
	minEnforcedLength = 4
)

// Enforcement selects how per-class minimum counts are applied.
type Enforcement string

const (
	// EnforceBestEffort overwrites positions starting at each class's index.
	// A later class may clobber an earlier class's characters, so the
	// minimums are not guaranteed.
	EnforceBestEffort Enforcement = "best-effort"
	// EnforceStrict places every required character at a distinct position.
	EnforceStrict Enforcement = "strict"
)

// PasswordOptions configures one password composition. Zero numeric values
// mean "unset".
type PasswordOptions struct {
	Length    int
	MaxLength int

	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	ExcludeSimilar   bool
	ExcludeAmbiguous bool
	CustomCharset    string

	Pronounceable       bool
	NoRepeatingChars    bool
	MustStartWithLetter bool
	MustEndWithNumber   bool

	MinLowercase int
	MinUppercase int
	MinNumbers   int
	MinSymbols   int

	Enforcement Enforcement
}

// TargetLength is the exact length of the password opts produce.
func (opts PasswordOptions) TargetLength() int {
	n := opts.Length
	if opts.MaxLength > 0 && opts.MaxLength < n {
		n = opts.MaxLength
	}
	return max(n, 0)
}

// Alphabet resolves the working alphabet for non-pronounceable draws. When
// the exclusion filters empty it, the filtered alphanumeric set is used.
func (opts PasswordOptions) Alphabet() string {
	set := charset.Build(charset.Options{
		Lowercase:        opts.Lowercase,
		Uppercase:        opts.Uppercase,
		Numbers:          opts.Numbers,
		Symbols:          opts.Symbols,
		Custom:           opts.CustomCharset,
		ExcludeSimilar:   opts.ExcludeSimilar,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
	})
	if set == "" {
		set = charset.Filter(charset.Alphanumeric, opts.ExcludeSimilar, opts.ExcludeAmbiguous)
	}
	return set
}

// Password composes a password of exactly opts.TargetLength() characters.
// Every transform after the initial draw is an in-place overwrite.
func (g *Generator) Password(src random.Source, opts PasswordOptions) string {
	n := opts.TargetLength()

	var pw []rune
	if opts.Pronounceable {
		pw = pronounceable(src, n, opts.Numbers, opts.Symbols)
	} else {
		pw = draw(src, n, opts.Alphabet(), opts.NoRepeatingChars)
		if opts.CustomCharset == "" && n >= minEnforcedLength {
			reqs := opts.requirements()
			if opts.Enforcement == EnforceStrict {
				enforceStrict(src, pw, reqs, opts.MustStartWithLetter, opts.MustEndWithNumber)
			} else {
				enforceBestEffort(src, pw, reqs)
			}
		}
	}

	if n > 0 && opts.MustStartWithLetter {
		pw[0] = pick(src, charset.Letters)
	}
	if n > 0 && opts.MustEndWithNumber {
		pw[n-1] = pick(src, charset.Digits)
	}

	return string(pw)
}

func pronounceable(src random.Source, n int, numbers, symbols bool) []rune {
	pw := make([]rune, n)
	for i := range pw {
		if i%2 == 0 {
			pw[i] = pick(src, consonants)
		} else {
			pw[i] = pick(src, vowels)
		}
	}
	if n == 0 {
		return pw
	}
	if numbers {
		pw[src.IntN(n)] = pick(src, charset.Digits)
	}
	if symbols {
		pw[src.IntN(n)] = pick(src, pronounceableMarks)
	}
	return pw
}

// draw samples n characters from set with replacement. With noRepeat, each
// draw resamples while the candidate was already used, accepting the last
// candidate after maxRepeatAttempts.
func draw(src random.Source, n int, set string, noRepeat bool) []rune {
	alphabet := []rune(set)
	pw := make([]rune, n)
	used := make(map[rune]bool)
	for i := range pw {
		var ch rune
		for attempt := 1; ; attempt++ {
			ch = alphabet[src.IntN(len(alphabet))]
			if !noRepeat || !used[ch] || attempt >= maxRepeatAttempts {
				break
			}
		}
		pw[i] = ch
		used[ch] = true
	}
	return pw
}

// pick draws one character from an ASCII class alphabet.
func pick(src random.Source, set string) rune {
	return rune(random.Pick(src, set))
}

// requirement is one active class with its filtered alphabet and minimum.
type requirement struct {
	chars string
	min   int
}

// requirements lists the active classes in fixed order: lowercase,
// uppercase, numbers, symbols. Unset minimums default to 1.
func (opts PasswordOptions) requirements() []requirement {
	classes := []struct {
		on    bool
		chars string
		min   int
	}{
		{opts.Lowercase, charset.Lowercase, opts.MinLowercase},
		{opts.Uppercase, charset.Uppercase, opts.MinUppercase},
		{opts.Numbers, charset.Digits, opts.MinNumbers},
		{opts.Symbols, charset.Symbols, opts.MinSymbols},
	}

	var reqs []requirement
	for _, c := range classes {
		if !c.on {
			continue
		}
		m := c.min
		if m <= 0 {
			m = 1
		}
		reqs = append(reqs, requirement{
			chars: charset.Filter(c.chars, opts.ExcludeSimilar, opts.ExcludeAmbiguous),
			min:   m,
		})
	}
	return reqs
}

// enforceBestEffort writes min characters of class k starting at position k,
// clamped to the last position.
func enforceBestEffort(src random.Source, pw []rune, reqs []requirement) {
	last := len(pw) - 1
	for idx, req := range reqs {
		if idx >= len(pw) || req.chars == "" {
			continue
		}
		for i := range req.min {
			pos := min(idx+i, last)
			pw[pos] = pick(src, req.chars)
		}
	}
}

// enforceStrict writes every required character to a distinct position drawn
// from a shuffle of the free positions. Position 0 and the last position are
// kept free when the start/end constraints will overwrite them. Classes are
// served in order until positions run out.
func enforceStrict(src random.Source, pw []rune, reqs []requirement, reserveFirst, reserveLast bool) {
	lo, hi := 0, len(pw)
	if reserveFirst {
		lo++
	}
	if reserveLast {
		hi--
	}
	if lo >= hi {
		return
	}

	free := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		free = append(free, i)
	}
	random.Shuffle(src, free)

	for _, req := range reqs {
		if req.chars == "" {
			continue
		}
		for range req.min {
			if len(free) == 0 {
				return
			}
			pw[free[0]] = pick(src, req.chars)
			free = free[1:]
		}
	}
}

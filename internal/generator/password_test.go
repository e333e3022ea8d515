package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/credgen/internal/charset"
	"github.com/vaultpass/credgen/internal/random"
	"github.com/vaultpass/credgen/internal/words"
)

func allClasses(length int) PasswordOptions {
	return PasswordOptions{Length: length, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

func TestPasswordLength(t *testing.T) {
	g := New(words.Default())

	tests := []struct {
		name string
		opts PasswordOptions
		want int
	}{
		{name: "default classes", opts: allClasses(16), want: 16},
		{name: "single class", opts: PasswordOptions{Length: 24, Numbers: true}, want: 24},
		{name: "no classes", opts: PasswordOptions{Length: 10}, want: 10},
		{name: "max length caps", opts: PasswordOptions{Length: 32, MaxLength: 8, Lowercase: true}, want: 8},
		{name: "max length above length", opts: PasswordOptions{Length: 12, MaxLength: 64, Lowercase: true}, want: 12},
		{name: "below enforcement threshold", opts: allClasses(3), want: 3},
		{name: "one char", opts: allClasses(1), want: 1},
		{name: "zero", opts: allClasses(0), want: 0},
		{name: "pronounceable", opts: PasswordOptions{Length: 15, Pronounceable: true, Numbers: true, Symbols: true}, want: 15},
		{name: "custom", opts: PasswordOptions{Length: 9, CustomCharset: "abc"}, want: 9},
		{name: "strict", opts: PasswordOptions{Length: 6, Lowercase: true, Numbers: true, MinNumbers: 10, Enforcement: EnforceStrict}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(50) {
				pw := g.Password(random.New(seed), tt.opts)
				require.Equal(t, tt.want, len([]rune(pw)))
			}
		})
	}
}

func TestPasswordIsReproducible(t *testing.T) {
	g := New(words.Default())
	opts := allClasses(20)
	assert.Equal(t, g.Password(random.New(9), opts), g.Password(random.New(9), opts))
}

func TestPasswordExcludeSimilar(t *testing.T) {
	g := New(words.Default())
	opts := allClasses(16)
	opts.ExcludeSimilar = true

	for seed := range uint64(1000) {
		pw := g.Password(random.New(seed), opts)
		require.False(t, strings.ContainsAny(pw, charset.Similar), "password %q has a similar char", pw)
	}
}

func TestPasswordExcludeAmbiguous(t *testing.T) {
	g := New(words.Default())
	opts := allClasses(16)
	opts.ExcludeAmbiguous = true

	for seed := range uint64(1000) {
		pw := g.Password(random.New(seed), opts)
		require.False(t, strings.ContainsAny(pw, charset.Ambiguous), "password %q has an ambiguous char", pw)
	}
}

func TestPasswordStartAndEnd(t *testing.T) {
	g := New(words.Default())

	t.Run("start with letter", func(t *testing.T) {
		opts := PasswordOptions{Length: 12, Numbers: true, Symbols: true, MustStartWithLetter: true}
		for seed := range uint64(200) {
			pw := g.Password(random.New(seed), opts)
			require.True(t, unicode.IsLetter(rune(pw[0])), "password %q", pw)
		}
	})

	t.Run("end with number", func(t *testing.T) {
		opts := PasswordOptions{Length: 12, Lowercase: true, Symbols: true, MustEndWithNumber: true}
		for seed := range uint64(200) {
			pw := g.Password(random.New(seed), opts)
			require.True(t, unicode.IsDigit(rune(pw[len(pw)-1])), "password %q", pw)
		}
	})

	t.Run("end wins at length one", func(t *testing.T) {
		opts := PasswordOptions{Length: 1, Lowercase: true, MustStartWithLetter: true, MustEndWithNumber: true}
		for seed := range uint64(50) {
			pw := g.Password(random.New(seed), opts)
			require.Len(t, pw, 1)
			require.True(t, unicode.IsDigit(rune(pw[0])), "password %q", pw)
		}
	})
}

func TestPasswordPronounceable(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{Length: 14, Pronounceable: true}

	for seed := range uint64(200) {
		pw := g.Password(random.New(seed), opts)
		for i, r := range pw {
			if i%2 == 0 {
				require.Contains(t, consonants, string(r), "password %q pos %d", pw, i)
			} else {
				require.Contains(t, vowels, string(r), "password %q pos %d", pw, i)
			}
		}
	}
}

func TestPasswordPronounceableMarks(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{Length: 14, Pronounceable: true, Numbers: true}

	for seed := range uint64(200) {
		pw := g.Password(random.New(seed), opts)
		require.True(t, strings.ContainsAny(pw, charset.Digits), "password %q", pw)
	}
}

func TestPasswordNoRepeatingChars(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{Length: 20, CustomCharset: charset.Lowercase, NoRepeatingChars: true}

	for seed := range uint64(200) {
		pw := g.Password(random.New(seed), opts)
		seen := make(map[rune]bool)
		for _, r := range pw {
			require.False(t, seen[r], "password %q repeats %q", pw, r)
			seen[r] = true
		}
	}
}

func TestPasswordCustomCharset(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{Length: 30, CustomCharset: "xyz", Uppercase: true, Numbers: true, MinNumbers: 5}

	for seed := range uint64(100) {
		pw := g.Password(random.New(seed), opts)
		require.Empty(t, strings.Trim(pw, "xyz"), "password %q left the custom set", pw)
	}
}

func TestPasswordCustomCharsetMultibyte(t *testing.T) {
	g := New(words.Default())
	pw := g.Password(random.New(1), PasswordOptions{Length: 8, CustomCharset: "äöü"})
	assert.Len(t, []rune(pw), 8)
	assert.Empty(t, strings.Trim(pw, "äöü"))
}

func TestPasswordAlphabetFallback(t *testing.T) {
	opts := PasswordOptions{Length: 16, CustomCharset: "0O1lI", ExcludeSimilar: true}
	want := charset.Filter(charset.Alphanumeric, true, false)
	assert.Equal(t, want, opts.Alphabet())

	g := New(words.Default())
	pw := g.Password(random.New(3), opts)
	assert.False(t, strings.ContainsAny(pw, charset.Similar))
}

func TestPasswordBestEffortPositions(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{Length: 12, Uppercase: true, Numbers: true}

	for seed := range uint64(200) {
		pw := g.Password(random.New(seed), opts)
		require.True(t, unicode.IsUpper(rune(pw[0])), "password %q", pw)
		require.True(t, unicode.IsDigit(rune(pw[1])), "password %q", pw)
	}
}

func TestPasswordStrictGuaranteesMinimums(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{
		Length: 8, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true,
		MinLowercase: 2, MinUppercase: 2, MinNumbers: 2, MinSymbols: 2,
		Enforcement: EnforceStrict,
	}

	for seed := range uint64(500) {
		pw := g.Password(random.New(seed), opts)
		var lower, upper, digit, symbol int
		for _, r := range pw {
			switch {
			case strings.ContainsRune(charset.Lowercase, r):
				lower++
			case strings.ContainsRune(charset.Uppercase, r):
				upper++
			case strings.ContainsRune(charset.Digits, r):
				digit++
			case strings.ContainsRune(charset.Symbols, r):
				symbol++
			}
		}
		require.Equal(t, []int{2, 2, 2, 2}, []int{lower, upper, digit, symbol}, "password %q", pw)
	}
}

func TestPasswordStrictKeepsReservedEnds(t *testing.T) {
	g := New(words.Default())
	opts := PasswordOptions{
		Length: 6, Lowercase: true, Symbols: true, MinSymbols: 4,
		MustStartWithLetter: true, MustEndWithNumber: true,
		Enforcement: EnforceStrict,
	}

	for seed := range uint64(200) {
		pw := g.Password(random.New(seed), opts)
		require.True(t, unicode.IsLetter(rune(pw[0])), "password %q", pw)
		require.True(t, unicode.IsDigit(rune(pw[5])), "password %q", pw)
		// one lowercase then four symbols fill the middle
		middle := pw[1:5]
		var symbols int
		for _, r := range middle {
			if strings.ContainsRune(charset.Symbols, r) {
				symbols++
			}
		}
		require.Equal(t, 3, symbols, "password %q", pw)
	}
}

package generator

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/credgen/internal/charset"
	"github.com/vaultpass/credgen/internal/random"
	"github.com/vaultpass/credgen/internal/words"
)

func TestUsernameThemedWords(t *testing.T) {
	g := New(words.Default())
	opts := UsernameOptions{WordCount: 2, Separator: "_", Case: CaseCapitalized, Theme: "tech"}
	re := regexp.MustCompile(`^[A-Z][a-z]+_[A-Z][a-z]+$`)
	tech := words.Default().Themes["tech"]

	for seed := range uint64(200) {
		name := g.Username(random.New(seed), opts)
		require.Regexp(t, re, name)
		parts := strings.Split(name, "_")
		require.Contains(t, tech.Adjectives, parts[0])
		require.Contains(t, tech.Nouns, parts[1])
	}
}

func TestUsernameTruncationIsPrefix(t *testing.T) {
	g := New(words.Default())
	full := UsernameOptions{WordCount: 3, Separator: "-", Case: CaseLower, AddRandomNumbers: true, RandomSuffix: true}
	short := full
	short.MaxLength = 6

	for seed := range uint64(100) {
		a := g.Username(random.New(seed), full)
		b := g.Username(random.New(seed), short)
		require.Len(t, b, 6)
		require.True(t, strings.HasPrefix(a, b), "%q is not a prefix of %q", b, a)
	}
}

func TestUsernameLengthBoundsWordMode(t *testing.T) {
	g := New(words.Default())
	opts := UsernameOptions{Length: 8, WordCount: 4}
	for seed := range uint64(100) {
		require.LessOrEqual(t, len(g.Username(random.New(seed), opts)), 8)
	}
}

func TestUsernameCharacterMode(t *testing.T) {
	g := New(words.Default())

	tests := []struct {
		name  string
		opts  UsernameOptions
		alpha string
	}{
		{name: "lowercase", opts: UsernameOptions{Length: 10, Lowercase: true}, alpha: charset.Lowercase},
		{name: "upper and digits", opts: UsernameOptions{Length: 10, Uppercase: true, Numbers: true}, alpha: charset.Uppercase + charset.Digits},
		{name: "specials", opts: UsernameOptions{Length: 10, SpecialChar: true}, alpha: charset.UsernameSpecials},
		{name: "no classes falls back", opts: UsernameOptions{Length: 10}, alpha: charset.Lowercase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := range uint64(50) {
				name := g.Username(random.New(seed), tt.opts)
				require.Len(t, name, 10)
				require.Empty(t, strings.Trim(name, tt.alpha), "username %q", name)
			}
		})
	}
}

func TestUsernameDigitRun(t *testing.T) {
	g := New(words.Default())

	t.Run("fixed count", func(t *testing.T) {
		opts := UsernameOptions{WordCount: 1, AddRandomNumbers: true, NumberCount: 3}
		re := regexp.MustCompile(`^[A-Za-z]+[0-9]{3}$`)
		for seed := range uint64(100) {
			require.Regexp(t, re, g.Username(random.New(seed), opts))
		}
	})

	t.Run("numbers flag in word mode", func(t *testing.T) {
		opts := UsernameOptions{WordCount: 2, Numbers: true}
		re := regexp.MustCompile(`^[A-Za-z]+[0-9]{1,4}$`)
		for seed := range uint64(100) {
			require.Regexp(t, re, g.Username(random.New(seed), opts))
		}
	})
}

func TestUsernameAffixes(t *testing.T) {
	g := New(words.Default())
	table := words.Default()

	name := g.Username(random.New(1), UsernameOptions{WordCount: 1, Separator: "-", Prefix: "pre", Suffix: "suf"})
	assert.True(t, strings.HasPrefix(name, "pre-"), name)
	assert.True(t, strings.HasSuffix(name, "-suf"), name)

	name = g.Username(random.New(2), UsernameOptions{WordCount: 1, Separator: ".", RandomPrefix: true, RandomSuffix: true})
	parts := strings.Split(name, ".")
	require.Len(t, parts, 3)
	assert.Contains(t, table.Prefixes, parts[0])
	assert.Contains(t, table.Suffixes, parts[2])
}

func TestUsernameEmptyTable(t *testing.T) {
	g := New(words.Table{})
	name := g.Username(random.New(1), UsernameOptions{WordCount: 2, Separator: "_"})
	assert.Equal(t, "_", name)
}

func TestResolveCaseMode(t *testing.T) {
	tests := []struct {
		capitalized, lower, upper bool
		want                      CaseMode
	}{
		{true, true, true, CaseCapitalized},
		{false, true, true, CaseRandom},
		{false, true, false, CaseLower},
		{false, false, true, CaseUpper},
		{false, false, false, CaseUnchanged},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCaseMode(tt.capitalized, tt.lower, tt.upper))
		})
	}
}

func TestCaseModeApply(t *testing.T) {
	src := random.New(1)
	assert.Equal(t, "Dragon", CaseCapitalized.apply("dRAGON", src))
	assert.Equal(t, "dragon", CaseLower.apply("DraGon", src))
	assert.Equal(t, "DRAGON", CaseUpper.apply("DraGon", src))
	assert.Equal(t, "DraGon", CaseUnchanged.apply("DraGon", src))
	assert.Equal(t, "", CaseCapitalized.apply("", src))
	assert.True(t, strings.EqualFold("dragon", CaseRandom.apply("Dragon", src)))
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "hé", truncate("héllo", 2))
	assert.Equal(t, "héllo", truncate("héllo", 0))
	assert.Equal(t, "héllo", truncate("héllo", 9))
}

func TestComposeUsernameReportsTruncation(t *testing.T) {
	g := New(words.Default())

	name, truncated := g.ComposeUsername(random.New(1), UsernameOptions{WordCount: 3, MaxLength: 5})
	assert.Len(t, name, 5)
	assert.True(t, truncated)

	name, truncated = g.ComposeUsername(random.New(1), UsernameOptions{Length: 6, Lowercase: true})
	assert.Len(t, name, 6)
	assert.False(t, truncated)
}

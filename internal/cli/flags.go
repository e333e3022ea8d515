package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vaultpass/credgen/internal/model"
)

// profile is a YAML document of generation defaults. Either section may be
// omitted.
type profile struct {
	Username model.UsernameSettings `yaml:"username"`
	Password model.PasswordSettings `yaml:"password"`
}

// loadProfile returns the built-in defaults overlaid with the file at path.
// An empty path returns the defaults.
func loadProfile(path string) (profile, error) {
	p := profile{
		Username: model.DefaultUsernameSettings(),
		Password: model.DefaultPasswordSettings(),
	}
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile{}, fmt.Errorf("reading profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return p, nil
}

// overlayFlags copies every flag the user set on cmd into a flag set bound to
// a resolved settings value, so explicit flags win over the profile.
func overlayFlags(cmd *cobra.Command, bind func(*pflag.FlagSet)) error {
	overlay := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	bind(overlay)

	var err error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if err != nil || overlay.Lookup(f.Name) == nil {
			return
		}
		err = overlay.Set(f.Name, f.Value.String())
	})
	return err
}

func bindUsernameFlags(fs *pflag.FlagSet, s *model.UsernameSettings) {
	fs.IntVar(&s.Length, "length", s.Length, "Length in character mode; also the default maximum")
	fs.IntVar(&s.MaxLength, "max-length", s.MaxLength, "Truncate to this many characters (0: use --length)")
	fs.IntVar(&s.WordCount, "words", s.WordCount, "Number of words (0: random characters)")
	fs.StringVar(&s.Separator, "separator", s.Separator, "Text between words and affixes")
	fs.BoolVar(&s.Capitalized, "capitalized", s.Capitalized, "Capitalize each word")
	fs.BoolVar(&s.Lowercase, "lowercase", s.Lowercase, "Lowercase letters")
	fs.BoolVar(&s.Uppercase, "uppercase", s.Uppercase, "Uppercase letters")
	fs.BoolVar(&s.Numbers, "numbers", s.Numbers, "Digits")
	fs.BoolVar(&s.SpecialChars, "special", s.SpecialChars, "Underscore and hyphen in character mode")
	fs.StringVar(&s.Prefix, "prefix", s.Prefix, "Literal prefix")
	fs.StringVar(&s.Suffix, "suffix", s.Suffix, "Literal suffix")
	fs.StringVar(&s.Theme, "theme", s.Theme, "Word theme: fantasy, tech or nature")
	fs.BoolVar(&s.AddRandomNumbers, "random-numbers", s.AddRandomNumbers, "Append a random digit run")
	fs.IntVar(&s.NumberCount, "number-count", s.NumberCount, "Digits in the appended run (0: 1 to 4)")
	fs.BoolVar(&s.RandomPrefix, "random-prefix", s.RandomPrefix, "Start with a random prefix word")
	fs.BoolVar(&s.RandomSuffix, "random-suffix", s.RandomSuffix, "End with a random suffix word")
}

func bindPasswordFlags(fs *pflag.FlagSet, s *model.PasswordSettings) {
	fs.IntVar(&s.Length, "length", s.Length, "Password length")
	fs.IntVar(&s.MaxLength, "max-length", s.MaxLength, "Cap on the length (0: none)")
	boolPtrVar(fs, &s.Uppercase, "uppercase", "Uppercase letters")
	boolPtrVar(fs, &s.Lowercase, "lowercase", "Lowercase letters")
	boolPtrVar(fs, &s.Numbers, "numbers", "Digits")
	boolPtrVar(fs, &s.Symbols, "symbols", "Symbols")
	fs.BoolVar(&s.ExcludeSimilar, "exclude-similar", s.ExcludeSimilar, "Drop i l 1 L o 0 O")
	fs.BoolVar(&s.ExcludeAmbiguous, "exclude-ambiguous", s.ExcludeAmbiguous, "Drop brackets, quotes and similar punctuation")
	fs.StringVar(&s.CustomCharset, "charset", s.CustomCharset, "Draw only from these characters")
	fs.BoolVar(&s.Pronounceable, "pronounceable", s.Pronounceable, "Alternate consonants and vowels")
	fs.BoolVar(&s.NoRepeatingChars, "no-repeat", s.NoRepeatingChars, "Avoid the same character twice in a row")
	fs.BoolVar(&s.MustStartWithLetter, "start-with-letter", s.MustStartWithLetter, "First character is a letter")
	fs.BoolVar(&s.MustEndWithNumber, "end-with-number", s.MustEndWithNumber, "Last character is a digit")
	fs.IntVar(&s.MinLowercase, "min-lowercase", s.MinLowercase, "Minimum lowercase letters (0: 1)")
	fs.IntVar(&s.MinUppercase, "min-uppercase", s.MinUppercase, "Minimum uppercase letters (0: 1)")
	fs.IntVar(&s.MinNumbers, "min-numbers", s.MinNumbers, "Minimum digits (0: 1)")
	fs.IntVar(&s.MinSymbols, "min-symbols", s.MinSymbols, "Minimum symbols (0: 1)")
	fs.StringVar(&s.Enforcement, "enforcement", s.Enforcement, "Minimum enforcement: best-effort or strict")
}

// boolPtr is a pflag.Value for an optional bool that defaults to true.
type boolPtr struct {
	p **bool
}

func boolPtrVar(fs *pflag.FlagSet, p **bool, name, usage string) {
	fs.VarPF(boolPtr{p}, name, "", usage).NoOptDefVal = "true"
}

func (b boolPtr) String() string {
	if *b.p == nil {
		return "true"
	}
	return strconv.FormatBool(**b.p)
}

func (b boolPtr) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b.p = model.Bool(v)
	return nil
}

func (boolPtr) Type() string { return "bool" }

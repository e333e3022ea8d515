package model

// UsernameSettings is the input to one username composition. It doubles as the
// settings snapshot stored with a generated username and as a saved default.
// Zero numeric values mean "unset".
type UsernameSettings struct {
	Length    int `json:"length" yaml:"length"`
	MaxLength int `json:"max_length,omitempty" yaml:"max_length"`

	Capitalized  bool `json:"capitalized" yaml:"capitalized"`
	Lowercase    bool `json:"lowercase" yaml:"lowercase"`
	Uppercase    bool `json:"uppercase" yaml:"uppercase"`
	Numbers      bool `json:"numbers" yaml:"numbers"`
	SpecialChars bool `json:"special_chars" yaml:"special_chars"`

	Separator string `json:"separator" yaml:"separator"`
	WordCount int    `json:"word_count" yaml:"word_count"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Suffix    string `json:"suffix" yaml:"suffix"`
	Theme     string `json:"theme,omitempty" yaml:"theme"`

	AddRandomNumbers bool `json:"add_random_numbers,omitempty" yaml:"add_random_numbers"`
	NumberCount      int  `json:"number_count,omitempty" yaml:"number_count"`
	RandomPrefix     bool `json:"random_prefix,omitempty" yaml:"random_prefix"`
	RandomSuffix     bool `json:"random_suffix,omitempty" yaml:"random_suffix"`
}

// PasswordSettings is the input to one password composition.
// Pointer bools distinguish a missing class flag (nil -> default true) from an
// explicit false.
type PasswordSettings struct {
	Length    int `json:"length" yaml:"length"`
	MaxLength int `json:"max_length,omitempty" yaml:"max_length"`

	Uppercase *bool `json:"uppercase" yaml:"uppercase"`
	Lowercase *bool `json:"lowercase" yaml:"lowercase"`
	Numbers   *bool `json:"numbers" yaml:"numbers"`
	Symbols   *bool `json:"symbols" yaml:"symbols"`

	ExcludeSimilar   bool   `json:"exclude_similar" yaml:"exclude_similar"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous" yaml:"exclude_ambiguous"`
	CustomCharset    string `json:"custom_charset" yaml:"custom_charset"`

	Pronounceable       bool `json:"pronounceable,omitempty" yaml:"pronounceable"`
	NoRepeatingChars    bool `json:"no_repeating_chars,omitempty" yaml:"no_repeating_chars"`
	MustStartWithLetter bool `json:"must_start_with_letter,omitempty" yaml:"must_start_with_letter"`
	MustEndWithNumber   bool `json:"must_end_with_number,omitempty" yaml:"must_end_with_number"`

	MinLowercase int `json:"min_lowercase,omitempty" yaml:"min_lowercase"`
	MinUppercase int `json:"min_uppercase,omitempty" yaml:"min_uppercase"`
	MinNumbers   int `json:"min_numbers,omitempty" yaml:"min_numbers"`
	MinSymbols   int `json:"min_symbols,omitempty" yaml:"min_symbols"`

	// Enforcement is "best-effort" (default) or "strict".
	Enforcement string `json:"enforcement,omitempty" yaml:"enforcement"`
}

// DefaultUsernameSettings are used when an identity has no saved defaults.
func DefaultUsernameSettings() UsernameSettings {
	return UsernameSettings{
		Length:      12,
		Capitalized: true,
		Numbers:     true,
		WordCount:   2,
	}
}

// DefaultPasswordSettings are used when an identity has no saved defaults.
func DefaultPasswordSettings() PasswordSettings {
	return PasswordSettings{
		Length:    16,
		Uppercase: Bool(true),
		Lowercase: Bool(true),
		Numbers:   Bool(true),
		Symbols:   Bool(true),
	}
}

// Resolved returns a copy with every nil class flag set to true, so a stored
// snapshot records exactly what was used.
func (s PasswordSettings) Resolved() PasswordSettings {
	s.Uppercase = Bool(boolDefault(s.Uppercase, true))
	s.Lowercase = Bool(boolDefault(s.Lowercase, true))
	s.Numbers = Bool(boolDefault(s.Numbers, true))
	s.Symbols = Bool(boolDefault(s.Symbols, true))
	return s
}

// Clone returns a copy that shares no class-flag pointers with s.
func (s PasswordSettings) Clone() PasswordSettings {
	s.Uppercase = cloneBool(s.Uppercase)
	s.Lowercase = cloneBool(s.Lowercase)
	s.Numbers = cloneBool(s.Numbers)
	s.Symbols = cloneBool(s.Symbols)
	return s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

func boolDefault(ptr *bool, def bool) bool {
	if ptr == nil {
		return def
	}
	return *ptr
}

func cloneBool(ptr *bool) *bool {
	if ptr == nil {
		return nil
	}
	return Bool(*ptr)
}

package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/credgen/internal/generator"
	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/random"
)

const (
	// MaxLength bounds every length and count a request may ask for.
	MaxLength = 4096
	// MaxBatch is the hard cap on batch results.
	MaxBatch = 20
)

var (
	ErrInvalidKind        = errors.New("type must be username or password")
	ErrLengthTooLong      = fmt.Errorf("length must be at most %d", MaxLength)
	ErrNegativeLength     = errors.New("lengths and counts must not be negative")
	ErrInvalidEnforcement = errors.New("enforcement must be best-effort or strict")
	ErrUsernameRequired   = errors.New("username is required")
	ErrInvalidOwnership   = errors.New("record not found or access denied")
)

func checkBounds(values ...int) error {
	for _, v := range values {
		if v < 0 {
			return ErrNegativeLength
		}
		if v > MaxLength {
			return ErrLengthTooLong
		}
	}
	return nil
}

// ValidateUsername rejects settings the composer would accept but that no
// caller could sensibly want.
func ValidateUsername(s model.UsernameSettings) error {
	return checkBounds(s.Length, s.MaxLength, s.WordCount, s.NumberCount)
}

// ValidatePassword is ValidateUsername for password settings.
func ValidatePassword(s model.PasswordSettings) error {
	if err := checkBounds(s.Length, s.MaxLength, s.MinLowercase, s.MinUppercase, s.MinNumbers, s.MinSymbols); err != nil {
		return err
	}
	switch generator.Enforcement(s.Enforcement) {
	case "", generator.EnforceBestEffort, generator.EnforceStrict:
		return nil
	default:
		return ErrInvalidEnforcement
	}
}

// UsernameOptions maps request settings onto composer options.
func UsernameOptions(s model.UsernameSettings) generator.UsernameOptions {
	return generator.UsernameOptions{
		Length:           s.Length,
		MaxLength:        s.MaxLength,
		Case:             generator.ResolveCaseMode(s.Capitalized, s.Lowercase, s.Uppercase),
		Lowercase:        s.Lowercase,
		Uppercase:        s.Uppercase,
		Numbers:          s.Numbers,
		SpecialChar:      s.SpecialChars,
		Separator:        s.Separator,
		WordCount:        s.WordCount,
		Prefix:           s.Prefix,
		Suffix:           s.Suffix,
		Theme:            s.Theme,
		AddRandomNumbers: s.AddRandomNumbers,
		NumberCount:      s.NumberCount,
		RandomPrefix:     s.RandomPrefix,
		RandomSuffix:     s.RandomSuffix,
	}
}

// PasswordOptions maps request settings onto composer options. Missing class
// flags default to true.
func PasswordOptions(s model.PasswordSettings) generator.PasswordOptions {
	s = s.Resolved()
	return generator.PasswordOptions{
		Length:              s.Length,
		MaxLength:           s.MaxLength,
		Uppercase:           *s.Uppercase,
		Lowercase:           *s.Lowercase,
		Numbers:             *s.Numbers,
		Symbols:             *s.Symbols,
		ExcludeSimilar:      s.ExcludeSimilar,
		ExcludeAmbiguous:    s.ExcludeAmbiguous,
		CustomCharset:       s.CustomCharset,
		Pronounceable:       s.Pronounceable,
		NoRepeatingChars:    s.NoRepeatingChars,
		MustStartWithLetter: s.MustStartWithLetter,
		MustEndWithNumber:   s.MustEndWithNumber,
		MinLowercase:        s.MinLowercase,
		MinUppercase:        s.MinUppercase,
		MinNumbers:          s.MinNumbers,
		MinSymbols:          s.MinSymbols,
		Enforcement:         generator.Enforcement(s.Enforcement),
	}
}

// sourceFor returns a reproducible source when a seed is given.
func sourceFor(seed *uint64) random.Source {
	if seed != nil {
		return random.New(*seed)
	}
	return random.Default()
}

package generator

import "unicode"

// Strength is a coarse, heuristic rating of a password. It is not an
// entropy estimate.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// RateStrength scores one point each for length >= 8, length >= 12, and the
// presence of lowercase, uppercase, digit and other characters.
func RateStrength(password string) (Strength, int) {
	var lower, upper, digit, other bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digit = true
		default:
			other = true
		}
	}

	score := 0
	for _, ok := range []bool{n >= 8, n >= 12, lower, upper, digit, other} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return StrengthWeak, score
	case score <= 4:
		return StrengthMedium, score
	default:
		return StrengthStrong, score
	}
}

package generator

import "unicode/utf16"

// CheckAvailability reports a pseudo availability verdict per platform.
//
// This is a placeholder, not a lookup: the verdict is a deterministic
// function of the username alone, so every platform gets the same answer.
// Callers must not treat it as authoritative.
func CheckAvailability(username string, platforms []string) map[string]bool {
	available := usernameHash(username)%3 != 0
	result := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		result[p] = available
	}
	return result
}

// usernameHash is |h| of the rolling hash h = h*31 + c over the UTF-16 code
// units of s, with 32-bit wraparound.
func usernameHash(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

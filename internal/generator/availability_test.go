package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsernameHash(t *testing.T) {
	assert.Equal(t, int64(0), usernameHash(""))
	assert.Equal(t, int64(97), usernameHash("a"))
	assert.Equal(t, int64(96354), usernameHash("abc"))
}

func TestCheckAvailability(t *testing.T) {
	platforms := []string{"github", "twitter"}

	got := CheckAvailability("a", platforms)
	assert.Equal(t, map[string]bool{"github": true, "twitter": true}, got)

	got = CheckAvailability("abc", platforms)
	assert.Equal(t, map[string]bool{"github": false, "twitter": false}, got)

	assert.Empty(t, CheckAvailability("a", nil))
}

func TestRateStrength(t *testing.T) {
	tests := []struct {
		password string
		want     Strength
		score    int
	}{
		{"abc", StrengthWeak, 1},
		{"abcdefgh", StrengthWeak, 2},
		{"abcdefgH1", StrengthMedium, 4},
		{"abcdefgH1!xyz", StrengthStrong, 6},
		{"", StrengthWeak, 0},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got, score := RateStrength(tt.password)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.score, score)
		})
	}
}

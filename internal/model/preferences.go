package model

import "time"

// Preferences is the single per-identity record of generation defaults.
type Preferences struct {
	Owner            string           `json:"-"`
	UsernameDefaults UsernameSettings `json:"username_defaults" yaml:"username_defaults"`
	PasswordDefaults PasswordSettings `json:"password_defaults" yaml:"password_defaults"`
	DarkMode         bool             `json:"dark_mode" yaml:"dark_mode"`
	UpdatedAt        time.Time        `json:"updated_at" yaml:"-"`
}

// DefaultPreferences is what a new identity starts with.
func DefaultPreferences(owner string) Preferences {
	return Preferences{
		Owner:            owner,
		UsernameDefaults: DefaultUsernameSettings(),
		PasswordDefaults: DefaultPasswordSettings(),
	}
}

// Clone returns a deep copy of p.
func (p Preferences) Clone() Preferences {
	p.PasswordDefaults = p.PasswordDefaults.Clone()
	return p
}

// DarkModeRequest toggles only the dark-mode flag.
type DarkModeRequest struct {
	DarkMode bool `json:"dark_mode"`
}

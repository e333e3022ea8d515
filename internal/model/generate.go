package model

// GenerateUsernameRequest asks for one username.
type GenerateUsernameRequest struct {
	UsernameSettings
	SaveToHistory bool    `json:"save_to_history"`
	Seed          *uint64 `json:"seed,omitempty"`
}

// GeneratePasswordRequest asks for one password.
type GeneratePasswordRequest struct {
	PasswordSettings
	SaveToHistory bool    `json:"save_to_history"`
	Seed          *uint64 `json:"seed,omitempty"`
}

// GenerateResponse carries one generated value.
type GenerateResponse struct {
	ID        string `json:"id,omitempty"`
	Type      Kind   `json:"type"`
	Value     string `json:"value"`
	Length    int    `json:"length"`
	Truncated bool   `json:"truncated,omitempty"`
	Strength  string `json:"strength,omitempty"`
	Score     int    `json:"score,omitempty"`
}

// BatchRequest asks for up to MaxBatch values of one kind. Exactly one of the
// settings blocks is read, chosen by Type.
type BatchRequest struct {
	Type     Kind              `json:"type"`
	Count    int               `json:"count"`
	Username *UsernameSettings `json:"username,omitempty"`
	Password *PasswordSettings `json:"password,omitempty"`
	Seed     *uint64           `json:"seed,omitempty"`
}

// BatchResponse lists batch values in request order.
type BatchResponse struct {
	Type   Kind     `json:"type"`
	Values []string `json:"values"`
}

// PairResponse is a username and password generated together.
type PairResponse struct {
	Username GenerateResponse `json:"username"`
	Password GenerateResponse `json:"password"`
}

// AvailabilityRequest asks whether a username is free on some platforms.
type AvailabilityRequest struct {
	Username  string   `json:"username"`
	Platforms []string `json:"platforms"`
}

// AvailabilityResponse is non-authoritative; see generator.CheckAvailability.
type AvailabilityResponse struct {
	Username  string          `json:"username"`
	Platforms map[string]bool `json:"platforms"`
}

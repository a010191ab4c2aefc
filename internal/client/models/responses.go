package models

import (
	"errors"
	"strings"
)

// NoFixRequired is the grammar endpoint's message when the text is already fine.
const NoFixRequired = "No fix required!"

var (
	ErrMissingToken    = errors.New("response has no token")
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// Credentials is the login body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register body.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TokenPair is returned by login and register.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func (t TokenPair) Validate() error {
	if t.Access == "" || t.Refresh == "" {
		return ErrMissingToken
	}
	return nil
}

// RefreshResult is returned by the refresh endpoint. Refresh is set only when
// the server rotates refresh tokens.
type RefreshResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

func (r RefreshResult) Validate() error {
	if r.Access == "" {
		return ErrMissingToken
	}
	return nil
}

// TextRequest is the body of the grammar and summarize calls.
type TextRequest struct {
	Text string `json:"text"`
}

// GrammarResult is either a corrected text or the "no fix required" message.
type GrammarResult struct {
	CorrectedText *string `json:"correctedText,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// NoFix reports whether the server found nothing to correct.
func (g GrammarResult) NoFix() bool {
	return g.CorrectedText == nil && g.Message == NoFixRequired
}

func (g GrammarResult) Validate() error {
	if g.CorrectedText != nil || g.NoFix() {
		return nil
	}
	return ErrUnexpectedShape
}

// SummaryResult is returned by the summarize endpoint.
type SummaryResult struct {
	Summary *string `json:"summary"`
}

func (s SummaryResult) Validate() error {
	if s.Summary == nil {
		return ErrUnexpectedShape
	}
	return nil
}

// TogglePinResult is returned by the toggle-pin endpoint.
type TogglePinResult struct {
	Message string `json:"message,omitempty"`
	Pinned  *bool  `json:"pinned,omitempty"`
}

// Profile is the current user's profile.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p Profile) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrUnexpectedShape
	}
	return nil
}

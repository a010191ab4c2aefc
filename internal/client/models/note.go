package models

import (
	"errors"
	"fmt"
	"strings"
)

// Note defaults.
const (
	DefaultFontSize  = 16
	DefaultFontStyle = "Calibri Body"
)

// Note is a user note as returned by the notes endpoints.
type Note struct {
	ID        ID     `json:"id,omitempty"`
	Title     string `json:"title"`
	Category  ID     `json:"category"`
	Content   string `json:"content"`
	Pinned    bool   `json:"pinned"`
	FontSize  int    `json:"font_size"`
	FontStyle string `json:"font_style"`
}

// NoteInput is the body of the create and update calls.
type NoteInput struct {
	Title     string `json:"title"`
	Category  ID     `json:"category"`
	Content   string `json:"content"`
	Pinned    bool   `json:"pinned,omitempty"`
	FontSize  int    `json:"font_size"`
	FontStyle string `json:"font_style"`
}

// Input returns the writable fields of n.
func (n Note) Input() NoteInput {
	return NoteInput{
		Title:     n.Title,
		Category:  n.Category,
		Content:   n.Content,
		Pinned:    n.Pinned,
		FontSize:  n.FontSize,
		FontStyle: n.FontStyle,
	}
}

// WithDefaults fills the font fields the server may omit.
func (n Note) WithDefaults() Note {
	if n.FontSize <= 0 {
		n.FontSize = DefaultFontSize
	}
	if strings.TrimSpace(n.FontStyle) == "" {
		n.FontStyle = DefaultFontStyle
	}
	return n
}

var ErrMissingID = errors.New("missing id")

// Validate checks a note received from the server.
func (n Note) Validate() error {
	if n.ID.IsZero() {
		return fmt.Errorf("note: %w", ErrMissingID)
	}
	return nil
}

// ValidateNotes checks every note of a list response.
func ValidateNotes(notes []Note) error {
	for i, n := range notes {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("notes[%d]: %w", i, err)
		}
	}
	return nil
}

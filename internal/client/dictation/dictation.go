// Package dictation abstracts the speech-to-text capability used by the note
// editor. The capability is injected; callers never probe the environment.
package dictation

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrUnavailable = errors.New("speech recognition is not available")
	ErrRunning     = errors.New("recognition already running")
)

// Result is one recognition event. Interim results have Final unset. A
// result with Err set ends the session.
type Result struct {
	Text  string
	Final bool
	Err   error
}

// Recognizer produces results on the returned channel until Stop is called,
// the context ends or the engine gives up. The channel is closed at the end
// of the session.
type Recognizer interface {
	Available() bool
	Start(ctx context.Context) (<-chan Result, error)
	Stop()
}

// Unavailable is the Recognizer for hosts without speech recognition.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Start(context.Context) (<-chan Result, error) { return nil, ErrUnavailable }

func (Unavailable) Stop() {}

// New returns a CommandRecognizer for a command line such as
// "vosk-stream --lang en", or Unavailable when command is blank.
func New(command string) Recognizer {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Unavailable{}
	}
	return NewCommandRecognizer(fields[0], fields[1:]...)
}

// AppendSegment joins a finalized segment onto text: trimmed, separated by
// a single space.
func AppendSegment(text, segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return text
	}
	if strings.TrimSpace(text) == "" {
		return segment
	}
	return strings.TrimRight(text, " ") + " " + segment
}

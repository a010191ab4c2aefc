package editor

import "errors"

var (
	ErrNoNote      = errors.New("note has no id")
	ErrFontSize    = errors.New("unsupported font size")
	ErrFontStyle   = errors.New("unsupported font style")
	ErrEmptyText   = errors.New("nothing to transform")
	ErrNothingOpen = errors.New("no dialog open")
)

// ValidationError reports the first required field that is missing. No
// request is sent when Save returns one.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

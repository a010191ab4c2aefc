// Package notify carries the short user-facing notices ("toasts") raised by
// the dashboard and the editor.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Toast struct {
	ID        string
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

func New(kind Kind, msg string) Toast {
	return Toast{ID: uuid.NewString(), Kind: kind, Message: msg, CreatedAt: time.Now()}
}

// Notifier shows toasts.
type Notifier interface {
	Notify(t Toast)
}

func Info(n Notifier, msg string)    { n.Notify(New(KindInfo, msg)) }
func Success(n Notifier, msg string) { n.Notify(New(KindSuccess, msg)) }
func Warning(n Notifier, msg string) { n.Notify(New(KindWarning, msg)) }
func Error(n Notifier, msg string)   { n.Notify(New(KindError, msg)) }

// Discard drops every toast.
type Discard struct{}

func (Discard) Notify(Toast) {}

// Recorder keeps every toast in order. Useful in tests.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(t Toast) {
	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	r.mu.Unlock()
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Messages returns the messages of the recorded toasts of kind k, or of all
// kinds when k is empty.
func (r *Recorder) Messages(k Kind) []string {
	var out []string
	for _, t := range r.Toasts() {
		if k == "" || t.Kind == k {
			out = append(out, t.Message)
		}
	}
	return out
}

func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.toasts = nil
	r.mu.Unlock()
}

var (
	infoColor    = color.New(color.FgCyan).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Terminal prints toasts as colored single lines.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) Notify(toast Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = fmt.Fprintln(t.out, Format(toast))
}

// Format renders a toast as "[kind] message" with the kind colored.
func Format(t Toast) string {
	var tag string
	switch t.Kind {
	case KindSuccess:
		tag = successColor("[ok]")
	case KindWarning:
		tag = warningColor("[warn]")
	case KindError:
		tag = errorColor("[error]")
	default:
		tag = infoColor("[info]")
	}
	return tag + " " + t.Message
}

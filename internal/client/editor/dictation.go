package editor

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notevault/internal/client/dictation"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
)

// Recording reports whether dictation is active.
func (e *Editor) Recording() bool { return e.recording }

// DictationAvailable reports whether a recognizer is usable.
func (e *Editor) DictationAvailable() bool { return e.recognizer.Available() }

// StartDictation begins a recognition session. Without a capability it
// raises a single info toast per editor and returns dictation.ErrUnavailable.
func (e *Editor) StartDictation(ctx context.Context) error {
	if e.recording {
		return nil
	}
	if !e.recognizer.Available() {
		e.unavailable()
		return dictation.ErrUnavailable
	}
	ch, err := e.recognizer.Start(ctx)
	if err != nil {
		if errors.Is(err, dictation.ErrUnavailable) {
			e.unavailable()
		} else {
			e.fail(ctx, err, msgDictationFailed)
		}
		return err
	}
	e.results = ch
	e.recording = true
	return nil
}

func (e *Editor) unavailable() {
	if e.warned {
		return
	}
	e.warned = true
	notify.Info(e.notify, msgDictationUnavailable)
}

// StopDictation ends the session. Results already queued are dropped.
func (e *Editor) StopDictation() {
	if !e.recording {
		return
	}
	e.recognizer.Stop()
	e.recording = false
	e.results = nil
}

// HandleDictation applies one recognition result. Only final segments touch
// the content; an error ends the session.
func (e *Editor) HandleDictation(ctx context.Context, r dictation.Result) {
	if r.Err != nil {
		e.recording = false
		e.results = nil
		e.fail(ctx, r.Err, msgDictationFailed)
		return
	}
	if !r.Final {
		return
	}
	e.content = dictation.AppendSegment(e.content, r.Text)
	e.canUndo = false
	e.touch()
}

// Pump applies every result that is ready without blocking. It returns
// false once the session has ended.
func (e *Editor) Pump(ctx context.Context) bool {
	for e.recording {
		select {
		case r, ok := <-e.results:
			if !ok {
				e.recording = false
				e.results = nil
				return false
			}
			e.HandleDictation(ctx, r)
		default:
			return true
		}
	}
	return false
}

// RunDictation starts a session and applies results until it ends or ctx
// is done.
func (e *Editor) RunDictation(ctx context.Context) error {
	if err := e.StartDictation(ctx); err != nil {
		return err
	}
	for e.recording {
		select {
		case r, ok := <-e.results:
			if !ok {
				e.recording = false
				e.results = nil
				return nil
			}
			e.HandleDictation(ctx, r)
		case <-ctx.Done():
			e.StopDictation()
			return nil
		}
	}
	return nil
}

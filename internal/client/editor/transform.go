package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/dmitrijs2005/notevault/internal/common"
)

// CheckGrammar replaces the content with the server's corrected text. The
// previous content goes to the undo slot. "No fix required" leaves the
// content alone.
func (e *Editor) CheckGrammar(ctx context.Context) error {
	if strings.TrimSpace(e.content) == "" {
		notify.Info(e.notify, msgEmptyContent)
		return ErrEmptyText
	}

	res, err := e.api.CheckGrammar(ctx, e.content)
	if err != nil {
		e.transformFailed(ctx, err, msgGrammarFailed)
		return err
	}
	if res.NoFix() {
		notify.Info(e.notify, msgNoFixRequired)
		return nil
	}

	e.applyTransform(*res.CorrectedText)
	notify.Success(e.notify, msgGrammarFixed)
	return nil
}

// Summarize replaces the content with its summary, keeping the previous
// content in the undo slot.
func (e *Editor) Summarize(ctx context.Context) error {
	if strings.TrimSpace(e.content) == "" {
		notify.Info(e.notify, msgEmptyContent)
		return ErrEmptyText
	}

	summary, err := e.api.Summarize(ctx, e.content)
	if err != nil {
		e.transformFailed(ctx, err, msgSummarizeFailed)
		return err
	}

	e.applyTransform(summary)
	notify.Success(e.notify, msgSummarized)
	return nil
}

func (e *Editor) transformFailed(ctx context.Context, err error, fallback string) {
	if errors.Is(err, common.ErrUnexpectedResponse) {
		fallback = msgUnexpectedAnswer
	}
	e.fail(ctx, err, fallback)
}

func (e *Editor) applyTransform(text string) {
	e.undoBuf = e.content
	e.canUndo = true
	e.content = text
	e.touch()
}

// CanUndo reports whether the last AI edit can be undone.
func (e *Editor) CanUndo() bool { return e.canUndo }

// Undo restores the content from before the last AI edit. It does nothing
// when no undo is on offer.
func (e *Editor) Undo() bool {
	if !e.canUndo {
		return false
	}
	e.content = e.undoBuf
	e.canUndo = false
	e.touch()
	return true
}

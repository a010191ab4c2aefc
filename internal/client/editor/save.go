package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/go-playground/validator/v10"
)

// noteForm lists the required fields in the order they are checked.
type noteForm struct {
	Title    string `validate:"required"`
	Category string `validate:"required"`
	Content  string `validate:"required"`
}

var requiredMessages = map[string]string{
	"Title":    msgTitleRequired,
	"Category": msgCategoryRequired,
	"Content":  msgContentRequired,
}

// Validate checks title, category and content, in that order, and returns
// the first one missing. The category must be one of the loaded real
// categories.
func (e *Editor) Validate() error {
	f := noteForm{
		Title:   strings.TrimSpace(e.title),
		Content: strings.TrimSpace(e.content),
	}
	if !e.category.IsAll() && e.cats.Contains(e.category) {
		f.Category = e.category.String()
	}
	err := e.validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	return &ValidationError{Field: field, Message: requiredMessages[field]}
}

// Save validates and then creates or updates the note. A validation failure
// raises one info toast and sends nothing.
func (e *Editor) Save(ctx context.Context) (*models.Note, error) {
	if err := e.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			notify.Info(e.notify, ve.Message)
		}
		return nil, err
	}

	in := models.NoteInput{
		Title:     e.title,
		Category:  e.category,
		Content:   e.content,
		Pinned:    e.pinned,
		FontSize:  e.fontSize,
		FontStyle: e.fontStyle,
	}

	var (
		n   *models.Note
		err error
	)
	created := e.IsNew()
	if created {
		n, err = e.api.CreateNote(ctx, in)
	} else {
		n, err = e.api.UpdateNote(ctx, e.id, in)
	}
	if err != nil {
		e.fail(ctx, err, msgSaveFailed)
		return nil, err
	}

	e.id = n.ID
	e.state = StateSaved
	if created {
		notify.Success(e.notify, msgNoteCreated)
	} else {
		notify.Success(e.notify, msgNoteUpdated)
	}
	e.log.Info(ctx, "note saved", "note_id", n.ID.String(), "created", created)
	e.done(ctx)
	return n, nil
}

// RequestDelete opens the delete confirmation. It fails for a note that was
// never saved.
func (e *Editor) RequestDelete() error {
	if e.IsNew() {
		return ErrNoNote
	}
	e.deleteDialog.Ask(e.id)
	return nil
}

func (e *Editor) DeletePending() bool { return e.deleteDialog.IsOpen() }

func (e *Editor) CancelDelete() { e.deleteDialog.Cancel() }

// ConfirmDelete deletes the note awaiting confirmation.
func (e *Editor) ConfirmDelete(ctx context.Context) error {
	id, ok := e.deleteDialog.Accept()
	if !ok {
		return ErrNothingOpen
	}
	return e.delete(ctx, id)
}

// Delete removes the note without asking. The terminal client uses it after
// its own prompt.
func (e *Editor) Delete(ctx context.Context) error {
	if e.IsNew() {
		return ErrNoNote
	}
	e.deleteDialog.Close()
	return e.delete(ctx, e.id)
}

func (e *Editor) delete(ctx context.Context, id models.ID) error {
	if err := e.api.DeleteNote(ctx, id); err != nil {
		e.fail(ctx, err, msgDeleteFailed)
		return err
	}
	e.state = StateDeleted
	notify.Success(e.notify, msgNoteDeleted)
	e.done(ctx)
	return nil
}

// RequestReset asks before clearing the content.
func (e *Editor) RequestReset() { e.resetDialog.Ask(struct{}{}) }

func (e *Editor) ResetPending() bool { return e.resetDialog.IsOpen() }

func (e *Editor) CancelReset() { e.resetDialog.Cancel() }

// ConfirmReset clears the content only. Title and category stay.
func (e *Editor) ConfirmReset() error {
	if _, ok := e.resetDialog.Accept(); !ok {
		return ErrNothingOpen
	}
	e.SetContent("")
	return nil
}

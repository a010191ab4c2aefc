package editor

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
)

func (e *Editor) Categories() []models.Category        { return e.cats.List() }
func (e *Editor) VisibleCategories() []models.Category { return e.cats.Visible() }
func (e *Editor) PrevCategories()                      { e.cats.Prev() }
func (e *Editor) NextCategories()                      { e.cats.Next() }
func (e *Editor) HasPrevCategories() bool              { return e.cats.HasPrev() }
func (e *Editor) HasNextCategories() bool              { return e.cats.HasNext() }

// CategoryTitle returns the title of the selected category.
func (e *Editor) CategoryTitle() string {
	t, _ := e.cats.Title(e.category)
	return t
}

// OpenNewCategory shows the new-category dialog.
func (e *Editor) OpenNewCategory() { e.categoryDialog.Open("") }

func (e *Editor) SetNewCategoryTitle(title string) {
	e.categoryDialog.Update(func(string) string { return title })
}

func (e *Editor) NewCategoryOpen() bool { return e.categoryDialog.IsOpen() }

func (e *Editor) CancelNewCategory() { e.categoryDialog.Close() }

// SaveNewCategory creates the category typed into the dialog and selects it.
// A blank title sends nothing and keeps the dialog open.
func (e *Editor) SaveNewCategory(ctx context.Context) (*models.Category, error) {
	title, open := e.categoryDialog.Payload()
	if !open {
		return nil, ErrNothingOpen
	}
	c, err := e.cats.Create(ctx, title)
	if err != nil {
		e.fail(ctx, err, msgCategoryFailed)
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	e.categoryDialog.Close()
	e.SetCategory(c.ID)
	notify.Success(e.notify, msgCategoryCreated)
	return c, nil
}

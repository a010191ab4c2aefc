package dashboard

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
)

func (d *Dashboard) Categories() []models.Category        { return d.cats.List() }
func (d *Dashboard) CategoryTitles() map[models.ID]string { return d.cats.Titles() }
func (d *Dashboard) VisibleCategories() []models.Category { return d.cats.Visible() }
func (d *Dashboard) PrevCategories()                      { d.cats.Prev() }
func (d *Dashboard) NextCategories()                      { d.cats.Next() }
func (d *Dashboard) HasPrevCategories() bool              { return d.cats.HasPrev() }
func (d *Dashboard) HasNextCategories() bool              { return d.cats.HasNext() }

// CategoryTitle returns the display title of id, "All" for the synthetic one.
func (d *Dashboard) CategoryTitle(id models.ID) string {
	if id.IsAll() {
		return models.AllCategoryTitle
	}
	t, _ := d.cats.Title(id)
	return t
}

// ToggleMenu opens the category's menu, closing any other.
func (d *Dashboard) ToggleMenu(id models.ID) {
	if id.IsAll() {
		return
	}
	d.menu.Toggle(id)
}

func (d *Dashboard) CloseMenu() { d.menu.Close() }

// OpenMenu returns the category whose menu is open.
func (d *Dashboard) OpenMenu() (models.ID, bool) { return d.menu.Open() }

func (d *Dashboard) OpenCreateCategory() {
	d.menu.Close()
	d.categoryDialog.Open(CategoryForm{})
}

func (d *Dashboard) OpenEditCategory(id models.ID) bool {
	t, ok := d.cats.Title(id)
	if !ok {
		return false
	}
	d.menu.Close()
	d.categoryDialog.Open(CategoryForm{ID: id, Title: t})
	return true
}

func (d *Dashboard) SetCategoryTitle(title string) {
	d.categoryDialog.Update(func(f CategoryForm) CategoryForm {
		f.Title = title
		return f
	})
}

// CategoryDialog returns the form being edited and whether the dialog is open.
func (d *Dashboard) CategoryDialog() (CategoryForm, bool) { return d.categoryDialog.Payload() }

func (d *Dashboard) CancelCategory() { d.categoryDialog.Close() }

// SaveCategory creates or renames the category in the open dialog. A blank
// title keeps the dialog open and sends nothing.
func (d *Dashboard) SaveCategory(ctx context.Context) (*models.Category, error) {
	f, open := d.categoryDialog.Payload()
	if !open {
		return nil, nil
	}

	var (
		c   *models.Category
		err error
	)
	if f.ID.IsZero() {
		c, err = d.cats.Create(ctx, f.Title)
	} else {
		c, err = d.cats.Update(ctx, f.ID, f.Title)
	}
	if err != nil {
		d.fail(ctx, err, msgCategorySaveFail)
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	d.categoryDialog.Close()
	if f.ID.IsZero() {
		notify.Success(d.notify, msgCategoryCreated)
	} else {
		notify.Success(d.notify, msgCategoryUpdated)
	}
	return c, nil
}

// OpenDeleteCategory asks for confirmation before deleting id.
func (d *Dashboard) OpenDeleteCategory(id models.ID) bool {
	if !d.cats.Contains(id) {
		return false
	}
	d.menu.Close()
	d.deleteDialog.Ask(id)
	return true
}

// DeleteCategoryDialog returns the category awaiting confirmation.
func (d *Dashboard) DeleteCategoryDialog() (models.ID, bool) { return d.deleteDialog.Payload() }

func (d *Dashboard) CancelDeleteCategory() { d.deleteDialog.Cancel() }

// ConfirmDeleteCategory deletes the category under confirmation together with
// its notes. When it was the active filter the filter falls back to "all".
func (d *Dashboard) ConfirmDeleteCategory(ctx context.Context) error {
	id, ok := d.deleteDialog.Payload()
	if !ok {
		return nil
	}
	if err := d.cats.Delete(ctx, id); err != nil {
		d.fail(ctx, err, msgUnexpected)
		return err
	}
	d.deleteDialog.Close()

	d.notes = slices.DeleteFunc(d.notes, func(n models.Note) bool { return n.Category == id })
	notify.Success(d.notify, msgCategoryDeleted)

	// The deleted category was the filter: fall back to all notes. A failed
	// reload keeps the local list and the next Load repopulates it.
	if d.filter == id {
		d.filter = models.AllCategoryID
		notes, err := d.api.ListNotes(ctx)
		if err != nil {
			d.log.Warn(ctx, "reload after category delete failed", "error", err)
			return nil
		}
		d.notes = SortNotes(notes, d.lang)
	}
	return nil
}

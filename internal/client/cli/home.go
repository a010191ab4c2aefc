package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
)

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return errUsage
}

// Home reloads categories and notes and prints the dashboard.
func (a *App) Home(ctx context.Context) error {
	err := a.dash.Load(ctx)
	a.printDashboard()
	return err
}

// List prints the dashboard without fetching.
func (a *App) List(ctx context.Context) error {
	a.printDashboard()
	return nil
}

func (a *App) printDashboard() {
	fmt.Fprint(a.out, formatCategoryBar(a.dash.VisibleCategories(), a.dash.ActiveCategory(),
		a.dash.HasPrevCategories(), a.dash.HasNextCategories()))
	if q := a.dash.Query(); q != "" {
		fmt.Fprintf(a.out, "%s %q\n", faint("Search:"), q)
	}
	fmt.Fprint(a.out, formatNoteList(a.dash.Visible(), a.dash.CategoryTitles()))
}

// Search sets the local filter. Without arguments it clears it.
func (a *App) Search(ctx context.Context, query string) error {
	a.dash.SetQuery(query)
	return a.List(ctx)
}

// SelectCategory switches the category filter and refetches.
func (a *App) SelectCategory(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("category <id|all>")
	}
	if err := a.dash.SelectCategory(ctx, models.ID(id)); err != nil {
		return err
	}
	return a.List(ctx)
}

func (a *App) CategoriesPrev(ctx context.Context) error {
	if a.editing {
		a.ed.PrevCategories()
		a.printPicker()
		return nil
	}
	a.dash.PrevCategories()
	return a.List(ctx)
}

func (a *App) CategoriesNext(ctx context.Context) error {
	if a.editing {
		a.ed.NextCategories()
		a.printPicker()
		return nil
	}
	a.dash.NextCategories()
	return a.List(ctx)
}

func (a *App) Pin(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("pin <id>")
	}
	if err := a.dash.TogglePin(ctx, models.ID(id)); err != nil {
		return a.notFound(err, id)
	}
	return a.List(ctx)
}

func (a *App) Copy(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("copy <id>")
	}
	if _, err := a.dash.CopyNote(ctx, models.ID(id)); err != nil {
		return a.notFound(err, id)
	}
	return a.List(ctx)
}

// Download writes the note as a .docx into the download directory.
func (a *App) Download(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("download <id>")
	}
	n, ok := a.dash.Note(models.ID(id))
	if !ok {
		return a.notFound(nil, id)
	}
	_, err := a.dash.DownloadNote(ctx, n)
	return err
}

func (a *App) notFound(err error, id string) error {
	if _, ok := a.dash.Note(models.ID(id)); !ok {
		fmt.Fprintf(a.out, "No note %s in the list\n", id)
		if err == nil {
			err = errUsage
		}
	}
	return err
}

// CategoryNew prompts for a title and creates a category.
func (a *App) CategoryNew(ctx context.Context) error {
	a.dash.OpenCreateCategory()
	return a.saveCategoryDialog(ctx)
}

// CategoryEdit prompts for a new title.
func (a *App) CategoryEdit(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("cat-edit <id>")
	}
	if models.ID(id).IsAll() || !a.dash.OpenEditCategory(models.ID(id)) {
		fmt.Fprintf(a.out, "No category %s\n", id)
		return errUsage
	}
	return a.saveCategoryDialog(ctx)
}

func (a *App) saveCategoryDialog(ctx context.Context) error {
	f, _ := a.dash.CategoryDialog()
	prompt := "Category title"
	if !f.ID.IsZero() {
		prompt = fmt.Sprintf("New title for %q", f.Title)
	}
	title, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		a.dash.CancelCategory()
		return err
	}
	a.dash.SetCategoryTitle(title)

	c, err := a.dash.SaveCategory(ctx)
	if err != nil || c == nil {
		a.dash.CancelCategory()
		if err == nil {
			fmt.Fprintln(a.out, "Title is empty, nothing saved")
		}
		return err
	}
	return a.List(ctx)
}

// CategoryDelete deletes a category and all of its notes after confirmation.
func (a *App) CategoryDelete(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("cat-del <id>")
	}
	cid := models.ID(id)
	if cid.IsAll() || !a.dash.OpenDeleteCategory(cid) {
		fmt.Fprintf(a.out, "No category %s\n", id)
		return errUsage
	}
	q := fmt.Sprintf("Delete category %q and all of its notes?", a.dash.CategoryTitle(cid))
	if !Confirm(a.reader, q, a.out) {
		a.dash.CancelDeleteCategory()
		return nil
	}
	if err := a.dash.ConfirmDeleteCategory(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

// ShowNote prints one note, rendering the content as markdown.
func (a *App) ShowNote(ctx context.Context, id string) error {
	if id == "" {
		if a.editing {
			fmt.Fprint(a.out, formatEditor(a.ed))
			return nil
		}
		return a.usage("show <id>")
	}
	n, ok := a.dash.Note(models.ID(id))
	if !ok {
		got, err := a.api.GetNote(ctx, models.ID(id))
		if err != nil {
			fmt.Fprintf(a.out, "Cannot load note %s: %v\n", id, err)
			return err
		}
		n = *got
	}
	fmt.Fprint(a.out, formatNoteHeader(n, a.dash.CategoryTitle(n.Category)))
	fmt.Fprintln(a.out, strings.TrimRight(formatNoteContent(n.Content), "\n"))
	return nil
}

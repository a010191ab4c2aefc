package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
)

// NewNote opens the editor on a blank note.
func (a *App) NewNote(ctx context.Context) error {
	if err := a.ed.Open(ctx, ""); err != nil {
		return err
	}
	a.editing = true
	fmt.Fprint(a.out, formatEditor(a.ed))
	return nil
}

// EditNote opens the editor on an existing note.
func (a *App) EditNote(ctx context.Context, id string) error {
	if id == "" {
		return a.usage("edit <id>")
	}
	if err := a.ed.Open(ctx, models.ID(id)); err != nil {
		return err
	}
	a.editing = true
	fmt.Fprint(a.out, formatEditor(a.ed))
	return nil
}

// EditorCommand runs cmd against the open editor. It reports false for
// commands the editor does not own.
func (a *App) EditorCommand(ctx context.Context, cmd string, args []string) (bool, error) {
	rest := strings.Join(args, " ")

	switch cmd {
	case "title":
		if rest == "" {
			t, err := getSimpleText(a.reader, "Title", a.out)
			if err != nil {
				return true, err
			}
			rest = t
		}
		a.ed.SetTitle(rest)

	case "content":
		text, err := GetMultiline(a.reader, "Content", a.out)
		if err != nil {
			return true, err
		}
		a.ed.SetContent(text)

	case "append":
		if rest == "" {
			return true, a.usage("append <text>")
		}
		content := a.ed.Content()
		if content != "" {
			content += "\n"
		}
		a.ed.SetContent(content + rest)

	case "category":
		if rest == "" {
			a.printPicker()
			return true, nil
		}
		id := models.ID(rest)
		if _, ok := categoryIn(a.ed.Categories(), id); !ok {
			fmt.Fprintf(a.out, "No category %s\n", rest)
			return true, errUsage
		}
		a.ed.SetCategory(id)

	case "cat-new":
		return true, a.editorNewCategory(ctx)

	case "font-size":
		if rest == "" {
			fmt.Fprintln(a.out, "Sizes:", formatInts(models.FontSizes))
			return true, nil
		}
		px, err := strconv.Atoi(rest)
		if err != nil {
			return true, a.usage("font-size <px>")
		}
		if err := a.ed.SetFontSize(px); err != nil {
			fmt.Fprintln(a.out, err)
			return true, err
		}

	case "font-style":
		if rest == "" {
			fmt.Fprintln(a.out, "Styles:", strings.Join(models.FontStyles, ", "))
			return true, nil
		}
		if err := a.ed.SetFontStyle(rest); err != nil {
			fmt.Fprintln(a.out, err)
			return true, err
		}

	case "grammar":
		if err := a.ed.CheckGrammar(ctx); err != nil {
			return true, err
		}

	case "summarize":
		if err := a.ed.Summarize(ctx); err != nil {
			return true, err
		}

	case "undo":
		if !a.ed.Undo() {
			fmt.Fprintln(a.out, "Nothing to undo")
			return true, nil
		}

	case "dictate":
		return true, a.dictate(ctx)

	case "reset":
		a.ed.RequestReset()
		if !Confirm(a.reader, "Clear the note content?", a.out) {
			a.ed.CancelReset()
			return true, nil
		}
		if err := a.ed.ConfirmReset(); err != nil {
			return true, err
		}

	case "save":
		_, err := a.ed.Save(ctx)
		return true, err

	case "delete":
		if err := a.ed.RequestDelete(); err != nil {
			fmt.Fprintln(a.out, "This note has not been saved yet")
			return true, err
		}
		if !Confirm(a.reader, fmt.Sprintf("Delete note %q?", a.ed.Title()), a.out) {
			a.ed.CancelDelete()
			return true, nil
		}
		return true, a.ed.ConfirmDelete(ctx)

	case "back":
		a.ed.StopDictation()
		a.editing = false
		return true, a.List(ctx)

	default:
		return false, nil
	}

	fmt.Fprint(a.out, formatEditor(a.ed))
	return true, nil
}

func (a *App) editorNewCategory(ctx context.Context) error {
	a.ed.OpenNewCategory()
	title, err := getSimpleText(a.reader, "Category title", a.out)
	if err != nil {
		a.ed.CancelNewCategory()
		return err
	}
	a.ed.SetNewCategoryTitle(title)
	c, err := a.ed.SaveNewCategory(ctx)
	if c == nil {
		a.ed.CancelNewCategory()
	}
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Fprintln(a.out, "Title is empty, nothing saved")
		return nil
	}
	a.printPicker()
	return nil
}

// dictate records until the recognizer stops or the user presses Ctrl-C.
func (a *App) dictate(ctx context.Context) error {
	if !a.ed.DictationAvailable() {
		return a.ed.StartDictation(ctx)
	}
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(a.out, "Listening... press Ctrl-C to stop")
	if err := a.ed.RunDictation(sctx); err != nil {
		return err
	}
	fmt.Fprint(a.out, formatEditor(a.ed))
	return nil
}

func (a *App) printPicker() {
	fmt.Fprint(a.out, formatCategoryBar(a.ed.VisibleCategories(), a.ed.Category(),
		a.ed.HasPrevCategories(), a.ed.HasNextCategories()))
}

func categoryIn(cs []models.Category, id models.ID) (models.Category, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func formatInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ", ")
}

package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCategory_CreateAndEdit(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	work := e.srv.AddCategory("alice", "Work")
	require.NoError(t, e.dash.Load(ctx))

	e.dash.OpenCreateCategory()
	e.dash.SetCategoryTitle("Personal")
	c, err := e.dash.SaveCategory(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)
	_, open := e.dash.CategoryDialog()
	assert.False(t, open)
	assert.Equal(t, []models.Category{models.AllCategory(), work, *c}, e.dash.Categories())
	assert.Equal(t, map[models.ID]string{work.ID: "Work", c.ID: "Personal"}, e.dash.CategoryTitles())

	require.True(t, e.dash.OpenEditCategory(work.ID))
	form, open := e.dash.CategoryDialog()
	require.True(t, open)
	assert.Equal(t, CategoryForm{ID: work.ID, Title: "Work"}, form)
	e.dash.SetCategoryTitle("Job")
	_, err = e.dash.SaveCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Job", e.dash.CategoryTitle(work.ID))

	assert.Equal(t, []string{msgCategoryCreated, msgCategoryUpdated}, e.toasts.Messages(notify.KindSuccess))
}

func TestSaveCategory_BlankTitleKeepsDialogOpen(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	e.dash.OpenCreateCategory()
	e.dash.SetCategoryTitle("   ")
	c, err := e.dash.SaveCategory(ctx)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, open := e.dash.CategoryDialog()
	assert.True(t, open)
	assert.Equal(t, 0, e.srv.Count(http.MethodPost, "/categories/create/"))
	assert.Empty(t, e.toasts.Toasts())

	e.dash.CancelCategory()
	_, open = e.dash.CategoryDialog()
	assert.False(t, open)

	c, err = e.dash.SaveCategory(ctx)
	require.NoError(t, err)
	assert.Nil(t, c, "nothing to save with the dialog closed")
}

func TestSaveCategory_ServerErrorKeepsDialog(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.srv.RespondNext(http.MethodPost, "/categories/create/", http.StatusBadRequest, map[string]string{"error": "Title too long"}, 1)

	e.dash.OpenCreateCategory()
	e.dash.SetCategoryTitle("x")
	_, err := e.dash.SaveCategory(ctx)
	require.Error(t, err)

	_, open := e.dash.CategoryDialog()
	assert.True(t, open)
	assert.Equal(t, []string{"Title too long"}, e.toasts.Messages(notify.KindError))
}

func TestDeleteCategory_CascadesAndResetsFilter(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	work := e.srv.AddCategory("alice", "Work")
	home := e.srv.AddCategory("alice", "Home")
	e.srv.AddNote("alice", models.Note{Title: "w1", Category: work.ID, Content: "x"})
	e.srv.AddNote("alice", models.Note{Title: "w2", Category: work.ID, Content: "x"})
	h := e.srv.AddNote("alice", models.Note{Title: "h", Category: home.ID, Content: "x"})
	require.NoError(t, e.dash.Load(ctx))
	require.NoError(t, e.dash.SelectCategory(ctx, work.ID))

	e.dash.ToggleMenu(work.ID)
	require.True(t, e.dash.OpenDeleteCategory(work.ID))
	_, menuOpen := e.dash.OpenMenu()
	assert.False(t, menuOpen)
	pending, ok := e.dash.DeleteCategoryDialog()
	require.True(t, ok)
	assert.Equal(t, work.ID, pending)

	require.NoError(t, e.dash.ConfirmDeleteCategory(ctx))

	assert.Equal(t, []models.Category{models.AllCategory(), home}, e.dash.Categories())
	assert.Equal(t, models.AllCategoryID, e.dash.ActiveCategory())
	assert.Equal(t, []models.ID{h.ID}, ids(e.dash.Notes()))
	for _, n := range e.dash.Notes() {
		assert.NotEqual(t, work.ID, n.Category)
	}
	assert.Equal(t, []string{msgCategoryDeleted}, e.toasts.Messages(notify.KindSuccess))
	_, ok = e.dash.DeleteCategoryDialog()
	assert.False(t, ok)
}

func TestDeleteCategory_ReloadFailureKeepsSuccess(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	work := e.srv.AddCategory("alice", "Work")
	e.srv.AddNote("alice", models.Note{Title: "w", Category: work.ID, Content: "x"})
	require.NoError(t, e.dash.Load(ctx))
	require.NoError(t, e.dash.SelectCategory(ctx, work.ID))

	e.srv.FailNext(http.MethodGet, "/notes/", http.StatusInternalServerError, 1)
	require.True(t, e.dash.OpenDeleteCategory(work.ID))
	require.NoError(t, e.dash.ConfirmDeleteCategory(ctx))

	assert.Equal(t, models.AllCategoryID, e.dash.ActiveCategory())
	assert.Empty(t, e.dash.Notes())
	assert.Equal(t, []string{msgCategoryDeleted}, e.toasts.Messages(notify.KindSuccess))
	assert.Empty(t, e.toasts.Messages(notify.KindError))
}

func TestDeleteCategory_OtherFilterKept(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	work := e.srv.AddCategory("alice", "Work")
	home := e.srv.AddCategory("alice", "Home")
	e.srv.AddNote("alice", models.Note{Title: "w", Category: work.ID, Content: "x"})
	require.NoError(t, e.dash.Load(ctx))
	require.NoError(t, e.dash.SelectCategory(ctx, home.ID))

	require.True(t, e.dash.OpenDeleteCategory(work.ID))
	require.NoError(t, e.dash.ConfirmDeleteCategory(ctx))
	assert.Equal(t, home.ID, e.dash.ActiveCategory())
	assert.Equal(t, []string{msgCategoryDeleted}, e.toasts.Messages(notify.KindSuccess), "same message whether or not notes existed")
}

func TestDeleteCategory_CancelAndFailure(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	work := e.srv.AddCategory("alice", "Work")
	require.NoError(t, e.dash.Load(ctx))

	assert.False(t, e.dash.OpenDeleteCategory(models.AllCategoryID))

	require.True(t, e.dash.OpenDeleteCategory(work.ID))
	e.dash.CancelDeleteCategory()
	require.NoError(t, e.dash.ConfirmDeleteCategory(ctx))
	assert.Equal(t, 0, e.srv.Count(http.MethodDelete, "/categories/delete/"+work.ID.String()+"/"))

	e.srv.FailNext(http.MethodDelete, "/categories/delete/", http.StatusInternalServerError, 1)
	require.True(t, e.dash.OpenDeleteCategory(work.ID))
	require.Error(t, e.dash.ConfirmDeleteCategory(ctx))
	assert.Len(t, e.dash.Categories(), 2)
	_, ok := e.dash.DeleteCategoryDialog()
	assert.True(t, ok, "dialog stays open after a failure")
}

func TestMenu_SingleOpen(t *testing.T) {
	e := setup(t)
	e.dash.ToggleMenu("1")
	e.dash.ToggleMenu("2")
	id, open := e.dash.OpenMenu()
	assert.True(t, open)
	assert.Equal(t, models.ID("2"), id)

	e.dash.ToggleMenu(models.AllCategoryID)
	id, _ = e.dash.OpenMenu()
	assert.Equal(t, models.ID("2"), id, "the All entry has no menu")

	e.dash.CloseMenu()
	_, open = e.dash.OpenMenu()
	assert.False(t, open)
}

func TestCategoryPagination(t *testing.T) {
	e := setup(t, WithCategoryWindow(3))
	for _, title := range []string{"a", "b", "c", "d"} {
		e.srv.AddCategory("alice", title)
	}
	require.NoError(t, e.dash.Load(context.Background()))

	assert.Len(t, e.dash.VisibleCategories(), 3)
	assert.False(t, e.dash.HasPrevCategories())
	e.dash.NextCategories()
	e.dash.NextCategories()
	e.dash.NextCategories()
	assert.False(t, e.dash.HasNextCategories())
	assert.Equal(t, "b", e.dash.VisibleCategories()[0].Title)
	e.dash.PrevCategories()
	assert.Equal(t, "a", e.dash.VisibleCategories()[0].Title)
	assert.Equal(t, "All", e.dash.CategoryTitle(models.AllCategoryID))
}

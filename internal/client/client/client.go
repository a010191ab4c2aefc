package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/notevault/internal/client/models"
)

// Client is the full NoteVault API surface. Components depend on narrower
// interfaces of their own; this one documents what HTTPClient offers.
type Client interface {
	Call(ctx context.Context, method, path string, body any, header http.Header) (*http.Response, error)

	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Register(ctx context.Context, r models.Registration) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResult, error)
	GetProfile(ctx context.Context) (*models.Profile, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, title string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id models.ID, title string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id models.ID) error

	ListNotes(ctx context.Context) ([]models.Note, error)
	ListNotesByCategory(ctx context.Context, categoryID models.ID) ([]models.Note, error)
	GetNote(ctx context.Context, id models.ID) (*models.Note, error)
	CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, id models.ID, in models.NoteInput) (*models.Note, error)
	DeleteNote(ctx context.Context, id models.ID) error
	TogglePin(ctx context.Context, id models.ID) (*models.TogglePinResult, error)

	CheckGrammar(ctx context.Context, text string) (*models.GrammarResult, error)
	Summarize(ctx context.Context, text string) (string, error)
}

var _ Client = (*HTTPClient)(nil)

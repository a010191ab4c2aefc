package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/common"
)

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	resp, err := c.callPublic(ctx, http.MethodPost, "/login/", models.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeTokens(resp)
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) (*models.TokenPair, error) {
	resp, err := c.callPublic(ctx, http.MethodPost, "/register/", r)
	if err != nil {
		return nil, err
	}
	return decodeTokens(resp)
}

func decodeTokens(resp *http.Response) (*models.TokenPair, error) {
	var tp models.TokenPair
	if err := decode(resp, &tp); err != nil {
		return nil, err
	}
	if err := tp.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return &tp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.callJSON(ctx, http.MethodGet, "/profile/", nil, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return &p, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cs []models.Category
	if err := c.callJSON(ctx, http.MethodGet, "/categories/", nil, &cs); err != nil {
		return nil, err
	}
	if err := models.ValidateCategories(cs); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return cs, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	return c.writeCategory(ctx, http.MethodPost, "/categories/create/", title)
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id models.ID, title string) (*models.Category, error) {
	return c.writeCategory(ctx, http.MethodPut, fmt.Sprintf("/categories/update/%s/", id), title)
}

func (c *HTTPClient) writeCategory(ctx context.Context, method, path, title string) (*models.Category, error) {
	var cat models.Category
	if err := c.callJSON(ctx, method, path, map[string]string{"title": title}, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return &cat, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id models.ID) error {
	return c.callJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/delete/%s/", id), nil, nil)
}

func (c *HTTPClient) ListNotes(ctx context.Context) ([]models.Note, error) {
	return c.listNotes(ctx, "/notes/")
}

func (c *HTTPClient) ListNotesByCategory(ctx context.Context, categoryID models.ID) ([]models.Note, error) {
	return c.listNotes(ctx, fmt.Sprintf("/notes/category/%s/", categoryID))
}

func (c *HTTPClient) listNotes(ctx context.Context, path string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.callJSON(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	if err := models.ValidateNotes(notes); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	for i := range notes {
		notes[i] = notes[i].WithDefaults()
	}
	return notes, nil
}

func (c *HTTPClient) GetNote(ctx context.Context, id models.ID) (*models.Note, error) {
	return c.noteCall(ctx, http.MethodGet, fmt.Sprintf("/notes/%s", id), nil)
}

func (c *HTTPClient) CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error) {
	return c.noteCall(ctx, http.MethodPost, "/notes/create/", in)
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id models.ID, in models.NoteInput) (*models.Note, error) {
	return c.noteCall(ctx, http.MethodPut, fmt.Sprintf("/notes/update/%s/", id), in)
}

func (c *HTTPClient) noteCall(ctx context.Context, method, path string, body any) (*models.Note, error) {
	var n models.Note
	if err := c.callJSON(ctx, method, path, body, &n); err != nil {
		return nil, err
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	n = n.WithDefaults()
	return &n, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id models.ID) error {
	return c.callJSON(ctx, http.MethodDelete, fmt.Sprintf("/notes/delete/%s/", id), nil, nil)
}

func (c *HTTPClient) TogglePin(ctx context.Context, id models.ID) (*models.TogglePinResult, error) {
	var res models.TogglePinResult
	if err := c.callJSON(ctx, http.MethodPost, fmt.Sprintf("/notes/toggle-pin/%s/", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckGrammar returns either corrected text or a NoFix result. Any other
// 2xx shape is an ErrUnexpectedResponse.
func (c *HTTPClient) CheckGrammar(ctx context.Context, text string) (*models.GrammarResult, error) {
	var res models.GrammarResult
	if err := c.callJSON(ctx, http.MethodPost, "/check_grammar/", models.TextRequest{Text: text}, &res); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return &res, nil
}

func (c *HTTPClient) Summarize(ctx context.Context, text string) (string, error) {
	var res models.SummaryResult
	if err := c.callJSON(ctx, http.MethodPost, "/summarize/", models.TextRequest{Text: text}, &res); err != nil {
		return "", err
	}
	if err := res.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnexpectedResponse, err)
	}
	return *res.Summary, nil
}

func (c *HTTPClient) callJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Call(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

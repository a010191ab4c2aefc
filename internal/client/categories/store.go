// Package categories keeps the in-memory category list used by the
// dashboard and the editor, together with its paginated view.
//
// A Store is driven from a single goroutine and is not safe for concurrent
// mutation.
package categories

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/common"
)

// API is the part of the REST client the store needs.
type API interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, title string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id models.ID, title string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id models.ID) error
}

// Window sizes used by the two screens.
const (
	DashboardWindow = 8
	EditorWindow    = 5
)

type Store struct {
	api     API
	withAll bool
	list    []models.Category
	titles  map[models.ID]string
	window  Window
}

type Option func(*Store)

// WithAllEntry prepends the synthetic "All" category to the list.
func WithAllEntry() Option {
	return func(s *Store) { s.withAll = true }
}

// WithWindow sets the pagination window size.
func WithWindow(size int) Option {
	return func(s *Store) { s.window = NewWindow(size) }
}

func NewStore(api API, opts ...Option) *Store {
	s := &Store{
		api:    api,
		titles: map[models.ID]string{},
		window: NewWindow(DashboardWindow),
	}
	for _, o := range opts {
		o(s)
	}
	s.reset(nil)
	return s
}

func (s *Store) reset(cs []models.Category) {
	s.list = make([]models.Category, 0, len(cs)+1)
	if s.withAll {
		s.list = append(s.list, models.AllCategory())
	}
	s.list = append(s.list, cs...)

	s.titles = make(map[models.ID]string, len(cs))
	for _, c := range cs {
		s.titles[c.ID] = c.Title
	}
	s.window.Clamp(len(s.list))
}

// Load fetches every category and rebuilds the list and the lookup.
func (s *Store) Load(ctx context.Context) error {
	cs, err := s.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	s.reset(cs)
	return nil
}

// Create adds a category. A blank title does nothing and returns (nil, nil).
func (s *Store) Create(ctx context.Context, title string) (*models.Category, error) {
	if common.IsBlank(title) {
		return nil, nil
	}
	c, err := s.api.CreateCategory(ctx, strings.TrimSpace(title))
	if err != nil {
		return nil, err
	}
	s.list = append(s.list, *c)
	s.titles[c.ID] = c.Title
	return c, nil
}

// Update renames a category. A blank title does nothing and returns (nil, nil).
func (s *Store) Update(ctx context.Context, id models.ID, title string) (*models.Category, error) {
	if common.IsBlank(title) {
		return nil, nil
	}
	c, err := s.api.UpdateCategory(ctx, id, strings.TrimSpace(title))
	if err != nil {
		return nil, err
	}
	if i := s.index(c.ID); i >= 0 {
		s.list[i] = *c
	} else {
		s.list = append(s.list, *c)
	}
	s.titles[c.ID] = c.Title
	return c, nil
}

// Delete removes a category on the server and locally. Notes are the
// caller's business.
func (s *Store) Delete(ctx context.Context, id models.ID) error {
	if id.IsAll() {
		return fmt.Errorf("delete category %q: %w", id, common.ErrorNotFound)
	}
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.list = slices.DeleteFunc(s.list, func(c models.Category) bool { return c.ID == id })
	delete(s.titles, id)
	s.window.Clamp(len(s.list))
	return nil
}

func (s *Store) index(id models.ID) int {
	return slices.IndexFunc(s.list, func(c models.Category) bool { return c.ID == id })
}

// List returns a copy of the categories, "All" first when enabled.
func (s *Store) List() []models.Category {
	return slices.Clone(s.list)
}

// Titles returns a copy of the id to title lookup. It never holds "all".
func (s *Store) Titles() map[models.ID]string {
	out := make(map[models.ID]string, len(s.titles))
	for k, v := range s.titles {
		out[k] = v
	}
	return out
}

// Title returns the title of id.
func (s *Store) Title(id models.ID) (string, bool) {
	t, ok := s.titles[id]
	return t, ok
}

func (s *Store) Contains(id models.ID) bool {
	_, ok := s.titles[id]
	return ok
}

func (s *Store) Len() int { return len(s.list) }

func (s *Store) Prev() { s.window.Prev(len(s.list)) }
func (s *Store) Next() { s.window.Next(len(s.list)) }

func (s *Store) HasPrev() bool { return s.window.HasPrev() }
func (s *Store) HasNext() bool { return s.window.HasNext(len(s.list)) }

// Visible returns the categories inside the pagination window.
func (s *Store) Visible() []models.Category {
	lo, hi := s.window.Bounds(len(s.list))
	return slices.Clone(s.list[lo:hi])
}

// WindowStart exposes the window offset, mostly for display.
func (s *Store) WindowStart() int { return s.window.Start() }

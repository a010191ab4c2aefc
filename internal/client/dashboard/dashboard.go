// Package dashboard holds the state of the home screen: the category bar,
// the note list with its search filter and pin ordering, and the category
// dialogs.
//
// A Dashboard is driven from a single goroutine and is not safe for
// concurrent use.
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/notevault/internal/client/categories"
	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/export"
	"github.com/dmitrijs2005/notevault/internal/client/modal"
	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"golang.org/x/text/language"
)

// API is the part of the REST client the dashboard needs.
type API interface {
	categories.API
	ListNotes(ctx context.Context) ([]models.Note, error)
	ListNotesByCategory(ctx context.Context, categoryID models.ID) ([]models.Note, error)
	CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	TogglePin(ctx context.Context, id models.ID) (*models.TogglePinResult, error)
}

// CategoryForm is the payload of the create/edit category dialog. An empty
// ID means create.
type CategoryForm struct {
	ID    models.ID
	Title string
}

type Dashboard struct {
	api    API
	cats   *categories.Store
	notify notify.Notifier
	sink   export.Sink
	log    logging.Logger
	lang   language.Tag

	notes   []models.Note
	filter  models.ID
	query   string
	loading bool
	onLoad  func(loading bool)

	menu           modal.Menu[models.ID]
	categoryDialog modal.Dialog[CategoryForm]
	deleteDialog   modal.Confirm[models.ID]
}

type Option func(*Dashboard)

func WithNotifier(n notify.Notifier) Option { return func(d *Dashboard) { d.notify = n } }
func WithSink(s export.Sink) Option         { return func(d *Dashboard) { d.sink = s } }
func WithLogger(l logging.Logger) Option    { return func(d *Dashboard) { d.log = l } }
func WithLanguage(t language.Tag) Option    { return func(d *Dashboard) { d.lang = t } }

// WithCategoryWindow sets how many categories the bar shows at once.
func WithCategoryWindow(n int) Option {
	return func(d *Dashboard) { d.cats = categories.NewStore(d.api, categories.WithAllEntry(), categories.WithWindow(n)) }
}

// WithLoadingHook is called with true before and false after an initial
// fetch, so the caller can show a spinner.
func WithLoadingHook(fn func(bool)) Option { return func(d *Dashboard) { d.onLoad = fn } }

func New(api API, opts ...Option) *Dashboard {
	d := &Dashboard{
		api:    api,
		notify: notify.Discard{},
		sink:   export.DirSink{Dir: "download"},
		log:    logging.Discard(),
		lang:   language.English,
		filter: models.AllCategoryID,
	}
	d.cats = categories.NewStore(api, categories.WithAllEntry(), categories.WithWindow(categories.DashboardWindow))
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Dashboard) setLoading(v bool) {
	d.loading = v
	if d.onLoad != nil {
		d.onLoad(v)
	}
}

// Loading reports whether an initial fetch is in flight.
func (d *Dashboard) Loading() bool { return d.loading }

// Load fetches categories and the notes of the active filter. Both fetches
// are attempted; failures are reported as toasts and the first is returned.
func (d *Dashboard) Load(ctx context.Context) error {
	d.setLoading(true)
	defer d.setLoading(false)

	var errs []error
	if err := d.cats.Load(ctx); err != nil {
		d.fail(ctx, err, msgLoadCategories)
		errs = append(errs, err)
	}
	if _, err := d.ListNotes(ctx, d.filter); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ListNotes fetches the notes of categoryID ("all" or empty for every note),
// stores them sorted and returns them.
func (d *Dashboard) ListNotes(ctx context.Context, categoryID models.ID) ([]models.Note, error) {
	var (
		notes []models.Note
		err   error
	)
	if categoryID.IsAll() {
		notes, err = d.api.ListNotes(ctx)
	} else {
		notes, err = d.api.ListNotesByCategory(ctx, categoryID)
	}
	if err != nil {
		d.fail(ctx, err, msgLoadNotes)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	d.notes = SortNotes(notes, d.lang)
	return slices.Clone(d.notes), nil
}

// SelectCategory makes id the active filter and refetches the notes.
func (d *Dashboard) SelectCategory(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		id = models.AllCategoryID
	}
	d.filter = id
	d.menu.Close()
	_, err := d.ListNotes(ctx, id)
	return err
}

func (d *Dashboard) ActiveCategory() models.ID { return d.filter }

// SetQuery changes the search text. Filtering happens locally.
func (d *Dashboard) SetQuery(q string) { d.query = q }

func (d *Dashboard) Query() string { return d.query }

// Notes returns every fetched note in display order.
func (d *Dashboard) Notes() []models.Note { return slices.Clone(d.notes) }

// Visible returns the fetched notes matching the search text.
func (d *Dashboard) Visible() []models.Note { return FilterNotes(d.notes, d.query) }

// Note looks up a fetched note by id.
func (d *Dashboard) Note(id models.ID) (models.Note, bool) {
	i := d.index(id)
	if i < 0 {
		return models.Note{}, false
	}
	return d.notes[i], true
}

func (d *Dashboard) index(id models.ID) int {
	return slices.IndexFunc(d.notes, func(n models.Note) bool { return n.ID == id })
}

func (d *Dashboard) resort() { d.notes = SortNotes(d.notes, d.lang) }

// TogglePin flips the note's pin locally, then asks the server. On failure
// only that note's flag is put back.
func (d *Dashboard) TogglePin(ctx context.Context, id models.ID) error {
	i := d.index(id)
	if i < 0 {
		return fmt.Errorf("note %s: %w", id, common.ErrorNotFound)
	}
	before := d.notes[i].Pinned
	d.notes[i].Pinned = !before
	d.resort()

	if _, err := d.api.TogglePin(ctx, id); err != nil {
		if j := d.index(id); j >= 0 {
			d.notes[j].Pinned = before
			d.resort()
		}
		d.fail(ctx, err, msgPinFailed)
		return err
	}
	return nil
}

// CopyNote creates a duplicate of the note titled "<title> - Copy".
func (d *Dashboard) CopyNote(ctx context.Context, id models.ID) (*models.Note, error) {
	src, ok := d.Note(id)
	if !ok {
		return nil, fmt.Errorf("note %s: %w", id, common.ErrorNotFound)
	}
	in := src.Input()
	in.Title += copySuffix

	n, err := d.api.CreateNote(ctx, in)
	if err != nil {
		d.fail(ctx, err, msgCopyFailed)
		return nil, err
	}
	d.notes = append(d.notes, *n)
	d.resort()
	notify.Success(d.notify, msgNoteCopied)
	return n, nil
}

// DownloadNote renders the note to a .docx and hands it to the sink. It
// makes no network call.
func (d *Dashboard) DownloadNote(ctx context.Context, n models.Note) (string, error) {
	var buf bytes.Buffer
	family := models.PrimaryFamily(models.FontStack(n.FontStyle))
	if err := export.WriteDocx(&buf, n, family); err != nil {
		d.fail(ctx, err, msgDownloadFailed)
		return "", err
	}
	path, err := d.sink.Save(export.FileName(n.Title), buf.Bytes())
	if err != nil {
		d.fail(ctx, err, msgDownloadFailed)
		return "", err
	}
	notify.Info(d.notify, msgDownloaded+path)
	return path, nil
}

func (d *Dashboard) fail(ctx context.Context, err error, fallback string) {
	d.log.Warn(ctx, fallback, "error", err)
	notify.Error(d.notify, client.UserMessage(err, fallback))
}

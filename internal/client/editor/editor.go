// Package editor holds the state of the note editing screen: the note's
// fields, the AI text helpers with their single undo slot, dictation and the
// confirm dialogs.
//
// An Editor is driven from a single goroutine and is not safe for concurrent
// use. Dictation results are pulled on that goroutine with Pump or
// RunDictation.
package editor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/notevault/internal/client/categories"
	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/dictation"
	"github.com/dmitrijs2005/notevault/internal/client/modal"
	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/go-playground/validator/v10"
)

// API is the part of the REST client the editor needs.
type API interface {
	categories.API
	GetNote(ctx context.Context, id models.ID) (*models.Note, error)
	CreateNote(ctx context.Context, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, id models.ID, in models.NoteInput) (*models.Note, error)
	DeleteNote(ctx context.Context, id models.ID) error
	CheckGrammar(ctx context.Context, text string) (*models.GrammarResult, error)
	Summarize(ctx context.Context, text string) (string, error)
}

type State int

const (
	StateNew State = iota
	StateLoaded
	StateDirty
	StateSaved
	StateDeleted
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateLoaded:
		return "loaded"
	case StateDirty:
		return "dirty"
	case StateSaved:
		return "saved"
	case StateDeleted:
		return "deleted"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

type Editor struct {
	api        API
	cats       *categories.Store
	notify     notify.Notifier
	log        logging.Logger
	recognizer dictation.Recognizer
	navigate   func(ctx context.Context)
	validate   *validator.Validate

	id        models.ID
	title     string
	category  models.ID
	content   string
	fontSize  int
	fontStyle string
	pinned    bool

	state   State
	loading bool
	onLoad  func(bool)

	undoBuf   string
	canUndo   bool
	recording bool
	warned    bool
	results   <-chan dictation.Result

	deleteDialog   modal.Confirm[models.ID]
	resetDialog    modal.Confirm[struct{}]
	categoryDialog modal.Dialog[string]
}

type Option func(*Editor)

func WithNotifier(n notify.Notifier) Option { return func(e *Editor) { e.notify = n } }
func WithLogger(l logging.Logger) Option    { return func(e *Editor) { e.log = l } }

// WithRecognizer injects the speech-to-text capability.
func WithRecognizer(r dictation.Recognizer) Option { return func(e *Editor) { e.recognizer = r } }

// WithNavigate sets the callback run after a successful save or delete.
func WithNavigate(fn func(ctx context.Context)) Option { return func(e *Editor) { e.navigate = fn } }

func WithLoadingHook(fn func(bool)) Option { return func(e *Editor) { e.onLoad = fn } }

// WithCategoryWindow sets how many categories the picker shows at once.
func WithCategoryWindow(n int) Option {
	return func(e *Editor) { e.cats = categories.NewStore(e.api, categories.WithWindow(n)) }
}

func New(api API, opts ...Option) *Editor {
	e := &Editor{
		api:        api,
		notify:     notify.Discard{},
		log:        logging.Discard(),
		recognizer: dictation.Unavailable{},
		validate:   validator.New(),
		fontSize:   models.DefaultFontSize,
		fontStyle:  models.DefaultFontStyle,
	}
	e.cats = categories.NewStore(api, categories.WithWindow(categories.EditorWindow))
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *Editor) setLoading(v bool) {
	e.loading = v
	if e.onLoad != nil {
		e.onLoad(v)
	}
}

// Open loads the categories and, when id is set, the note. A failed note
// fetch leaves a blank new note behind.
func (e *Editor) Open(ctx context.Context, id models.ID) error {
	e.setLoading(true)
	defer e.setLoading(false)

	e.clear()

	if err := e.cats.Load(ctx); err != nil {
		e.fail(ctx, err, msgLoadCategories)
		return err
	}
	if id.IsZero() {
		return nil
	}

	n, err := e.api.GetNote(ctx, id)
	if err != nil {
		e.fail(ctx, err, msgLoadNote)
		return fmt.Errorf("get note %s: %w", id, err)
	}
	e.id = n.ID
	e.title = n.Title
	e.category = n.Category
	e.content = n.Content
	e.fontSize = n.FontSize
	e.fontStyle = n.FontStyle
	e.pinned = n.Pinned
	e.state = StateLoaded
	return nil
}

func (e *Editor) clear() {
	e.id, e.title, e.category, e.content = "", "", "", ""
	e.fontSize, e.fontStyle, e.pinned = models.DefaultFontSize, models.DefaultFontStyle, false
	e.state = StateNew
	e.undoBuf, e.canUndo = "", false
	e.deleteDialog.Close()
	e.resetDialog.Close()
	e.categoryDialog.Close()
}

func (e *Editor) touch() { e.state = StateDirty }

func (e *Editor) SetTitle(s string) {
	e.title = s
	e.touch()
}

func (e *Editor) SetCategory(id models.ID) {
	e.category = id
	e.touch()
}

// SetContent replaces the content. Manual edits withdraw the undo offer.
func (e *Editor) SetContent(s string) {
	e.content = s
	e.canUndo = false
	e.touch()
}

// SetFontSize accepts only sizes from models.FontSizes.
func (e *Editor) SetFontSize(px int) error {
	if !models.ValidFontSize(px) {
		return fmt.Errorf("%w: %d", ErrFontSize, px)
	}
	e.fontSize = px
	e.touch()
	return nil
}

// SetFontStyle accepts only styles from models.FontStyles.
func (e *Editor) SetFontStyle(style string) error {
	if !models.ValidFontStyle(style) {
		return fmt.Errorf("%w: %q", ErrFontStyle, style)
	}
	e.fontStyle = style
	e.touch()
	return nil
}

func (e *Editor) ID() models.ID       { return e.id }
func (e *Editor) Title() string       { return e.title }
func (e *Editor) Category() models.ID { return e.category }
func (e *Editor) Content() string     { return e.content }
func (e *Editor) FontSize() int       { return e.fontSize }
func (e *Editor) FontStyle() string   { return e.fontStyle }
func (e *Editor) State() State        { return e.state }
func (e *Editor) Loading() bool       { return e.loading }
func (e *Editor) IsNew() bool         { return e.id.IsZero() }

// FontStack is the font-family stack for the current style.
func (e *Editor) FontStack() string { return models.FontStack(e.fontStyle) }

// Note returns the current fields as a note.
func (e *Editor) Note() models.Note {
	return models.Note{
		ID:        e.id,
		Title:     e.title,
		Category:  e.category,
		Content:   e.content,
		Pinned:    e.pinned,
		FontSize:  e.fontSize,
		FontStyle: e.fontStyle,
	}
}

func (e *Editor) fail(ctx context.Context, err error, fallback string) {
	e.log.Warn(ctx, fallback, "error", err, "note_id", e.id.String())
	notify.Error(e.notify, client.UserMessage(err, fallback))
}

func (e *Editor) done(ctx context.Context) {
	if e.navigate != nil {
		e.navigate(ctx)
	}
}

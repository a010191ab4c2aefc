package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/config"
	"github.com/dmitrijs2005/notevault/internal/client/dashboard"
	"github.com/dmitrijs2005/notevault/internal/client/dictation"
	"github.com/dmitrijs2005/notevault/internal/client/editor"
	"github.com/dmitrijs2005/notevault/internal/client/export"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/dmitrijs2005/notevault/internal/client/services"
	"github.com/dmitrijs2005/notevault/internal/client/session"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"golang.org/x/text/language"
)

// App is the interactive terminal client. It owns one dashboard and one
// editor and switches between them.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	store  session.Store
	api    *client.HTTPClient
	auth   services.AuthService
	toasts notify.Notifier
	dash   *dashboard.Dashboard
	ed     *editor.Editor

	userName string
	editing  bool
}

// NewApp wires the client against the session database db.
func NewApp(cfg *config.Config, db *sql.DB, log logging.Logger) *App {
	return newApp(cfg, session.NewSQLiteStore(db), os.Stdin, os.Stdout, log, dictation.New(cfg.DictationCommand))
}

func newApp(cfg *config.Config, store session.Store, in io.Reader, out io.Writer, log logging.Logger, rec dictation.Recognizer) *App {
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		cfg:    cfg,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
		store:  store,
		toasts: notify.NewTerminal(out),
	}

	a.api = client.NewHTTPClient(cfg.APIBaseURL, store,
		client.WithLogger(log.With("component", "http")),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithSessionExpiredHook(a.sessionExpired),
	)
	a.auth = services.NewAuthService(a.api, store, log.With("component", "auth"))

	lang, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Warn(context.Background(), "unknown locale, using English", "locale", cfg.Locale, "error", err)
		lang = language.English
	}

	a.dash = dashboard.New(a.api,
		dashboard.WithNotifier(a.toasts),
		dashboard.WithLogger(log.With("component", "dashboard")),
		dashboard.WithSink(export.DirSink{Dir: cfg.DownloadDir}),
		dashboard.WithLanguage(lang),
		dashboard.WithCategoryWindow(cfg.DashboardCategoryWindow),
	)
	a.ed = editor.New(a.api,
		editor.WithNotifier(a.toasts),
		editor.WithLogger(log.With("component", "editor")),
		editor.WithRecognizer(rec),
		editor.WithCategoryWindow(cfg.EditorCategoryWindow),
		editor.WithNavigate(a.backHome),
	)
	return a
}

// Run restores a stored session, if any, and blocks in the REPL until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to NoteVault (type 'help' for commands)")

	id, err := a.auth.Current(ctx)
	switch {
	case err == nil:
		a.userName = id.Username
		fmt.Fprintf(a.out, "Welcome back, %s!\n", id.DisplayName())
		_ = a.Home(ctx)
	case errors.Is(err, services.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Please login or register.")
	default:
		a.log.Error(ctx, "reading session failed", "error", err)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool { return a.userName != "" }
func (a *App) isEditing() bool  { return a.editing }

func (a *App) status() string {
	switch {
	case !a.isLoggedIn():
		return ""
	case a.editing && a.ed.IsNew():
		return fmt.Sprintf("(%s: new note)", a.userName)
	case a.editing:
		return fmt.Sprintf("(%s: editing %s)", a.userName, a.ed.ID())
	default:
		return fmt.Sprintf("(%s)", a.userName)
	}
}

// sessionExpired runs when a refresh fails. The store is already cleared.
func (a *App) sessionExpired(ctx context.Context) {
	a.log.Info(ctx, "session expired", "username", a.userName)
	a.userName = ""
	a.editing = false
}

// backHome leaves the editor and reloads the dashboard.
func (a *App) backHome(ctx context.Context) {
	a.editing = false
	_ = a.Home(ctx)
}

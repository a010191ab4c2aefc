// Package apitest runs an in-memory NoteVault REST server for tests. It
// speaks the same routes and JSON shapes as the real backend, issues HS256
// JWTs and can be told to fail or to expire tokens on demand.
package apitest

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type user struct {
	username  string
	email     string
	hash      []byte
	firstName string
	lastName  string
}

type fault struct {
	method string
	prefix string
	status int
	body   any
	left   int
}

// Server is safe for concurrent use.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	log        *slog.Logger
	validate   *validator.Validate
	secret     []byte
	accessGen  int
	refreshGen int
	rotate     bool

	users      map[string]*user
	categories map[string][]models.Category
	notes      map[string][]models.Note
	nextID     int

	faults []*fault
	counts map[string]int
}

type Option func(*Server)

// WithRotatingRefresh makes the refresh endpoint return a new refresh token
// along with the access token.
func WithRotatingRefresh() Option {
	return func(s *Server) { s.rotate = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New starts a server. Call Close when done.
func New(opts ...Option) *Server {
	s := &Server{
		log:        slog.New(slog.DiscardHandler),
		validate:   validator.New(),
		secret:     []byte("apitest-secret"),
		users:      map[string]*user{},
		categories: map[string][]models.Category{},
		notes:      map[string][]models.Note{},
		counts:     map[string]int{},
	}
	for _, o := range opts {
		o(s)
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.count)
	r.Use(s.faultInjector)

	r.Post("/login/", s.handleLogin)
	r.Post("/register/", s.handleRegister)
	r.Post("/refresh/", s.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/profile/", s.handleProfile)

		r.Get("/categories/", s.handleListCategories)
		r.Post("/categories/create/", s.handleCreateCategory)
		r.Put("/categories/update/{id}/", s.handleUpdateCategory)
		r.Delete("/categories/delete/{id}/", s.handleDeleteCategory)

		r.Get("/notes/", s.handleListNotes)
		r.Get("/notes/category/{id}/", s.handleListNotesByCategory)
		r.Get("/notes/{id}", s.handleGetNote)
		r.Post("/notes/create/", s.handleCreateNote)
		r.Put("/notes/update/{id}/", s.handleUpdateNote)
		r.Delete("/notes/delete/{id}/", s.handleDeleteNote)
		r.Post("/notes/toggle-pin/{id}/", s.handleTogglePin)

		r.Post("/check_grammar/", s.handleGrammar)
		r.Post("/summarize/", s.handleSummarize)
	})

	return r
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.counts[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) faultInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f := s.takeFault(r.Method, r.URL.Path); f != nil {
			s.log.Info("injected fault", "method", r.Method, "path", r.URL.Path, "status", f.status,
				"request_id", middleware.GetReqID(r.Context()))
			render.Status(r, f.status)
			render.JSON(w, r, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) takeFault(method, path string) *fault {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.faults {
		if f.method == method && strings.HasPrefix(path, f.prefix) {
			f.left--
			if f.left <= 0 {
				s.faults = append(s.faults[:i], s.faults[i+1:]...)
			}
			return f
		}
	}
	return nil
}

// FailNext makes the next n requests whose path starts with prefix answer
// status with an {"error": ...} body.
func (s *Server) FailNext(method, prefix string, status, n int) {
	s.RespondNext(method, prefix, status, map[string]string{"error": http.StatusText(status)}, n)
}

// RespondNext makes the next n matching requests answer status with body,
// bypassing the real handler.
func (s *Server) RespondNext(method, prefix string, status int, body any, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, &fault{method: method, prefix: prefix, status: status, body: body, left: n})
}

// Count returns how many requests hit method and exact path.
func (s *Server) Count(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[method+" "+path]
}

// ResetCounts zeroes the request counters.
func (s *Server) ResetCounts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = map[string]int{}
}

// AddUser registers a user directly and returns a fresh token pair.
func (s *Server) AddUser(username, password, firstName string) models.TokenPair {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = &user{username: username, email: username + "@example.com", hash: hash, firstName: firstName}
	tp, err := s.issuePair(username)
	if err != nil {
		panic(err)
	}
	return tp
}

// AddCategory stores a category owned by username.
func (s *Server) AddCategory(username, title string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Category{ID: s.newID(), Title: title}
	s.categories[username] = append(s.categories[username], c)
	return c
}

// AddNote stores a note owned by username. Missing font fields get defaults.
func (s *Server) AddNote(username string, n models.Note) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.newID()
	n = n.WithDefaults()
	s.notes[username] = append(s.notes[username], n)
	return n
}

// Notes returns a copy of username's notes.
func (s *Server) Notes(username string) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Note(nil), s.notes[username]...)
}

// Categories returns a copy of username's categories.
func (s *Server) Categories(username string) []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories[username]...)
}

// ExpireAccessTokens invalidates every access token issued so far.
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	s.accessGen++
	s.mu.Unlock()
}

// RevokeRefreshTokens invalidates every refresh token issued so far.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	s.refreshGen++
	s.mu.Unlock()
}

func (s *Server) newID() models.ID {
	s.nextID++
	return models.ID(itoa(s.nextID))
}

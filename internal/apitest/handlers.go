package apitest

import (
	"net/http"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type categoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type noteRequest struct {
	Title     string    `json:"title" validate:"required"`
	Category  models.ID `json:"category" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Pinned    bool      `json:"pinned"`
	FontSize  int       `json:"font_size"`
	FontStyle string    `json:"font_style"`
}

type textRequest struct {
	Text string `json:"text"`
}

func fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}

// decode reads and validates the JSON body. It writes a 400 and returns false
// on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		s.log.Warn("failed to decode request body", "error", err, "request_id", middleware.GetReqID(r.Context()))
		fail(w, r, http.StatusBadRequest, "invalid request")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		fail(w, r, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.Username]
	if !ok || bcrypt.CompareHashAndPassword(u.hash, []byte(req.Password)) != nil {
		unauthorized(w, r, "No active account found with the given credentials")
		return
	}
	tp, err := s.issuePair(u.username)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "failed to generate token")
		return
	}
	render.JSON(w, r, tp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decode(w, r, &req) {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "failed to hash password")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.Username]; ok {
		fail(w, r, http.StatusBadRequest, "Username already exists")
		return
	}
	s.users[req.Username] = &user{
		username:  req.Username,
		email:     req.Email,
		hash:      hash,
		firstName: req.FirstName,
		lastName:  req.LastName,
	}
	tp, err := s.issuePair(req.Username)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "failed to generate token")
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, tp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh" validate:"required"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username, err := s.parse(req.Refresh, tokenRefresh)
	if err != nil {
		unauthorized(w, r, "Token is invalid or expired")
		return
	}
	tp, err := s.issuePair(username)
	if err != nil {
		fail(w, r, http.StatusInternalServerError, "failed to generate token")
		return
	}
	res := models.RefreshResult{Access: tp.Access}
	if s.rotate {
		res.Refresh = tp.Refresh
	}
	render.JSON(w, r, res)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u := s.users[currentUser(r)]
	s.mu.Unlock()

	render.JSON(w, r, models.Profile{
		Username:  u.username,
		Email:     u.email,
		FirstName: u.firstName,
		LastName:  u.lastName,
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cs := append([]models.Category{}, s.categories[currentUser(r)]...)
	s.mu.Unlock()
	render.JSON(w, r, cs)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u := currentUser(r)
	c := models.Category{ID: s.newID(), Title: req.Title}
	s.categories[u] = append(s.categories[u], c)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !s.decode(w, r, &req) {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.categories[currentUser(r)]
	i := slices.IndexFunc(cs, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		fail(w, r, http.StatusNotFound, "Category not found")
		return
	}
	cs[i].Title = req.Title
	render.JSON(w, r, cs[i])
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	u := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	cs := s.categories[u]
	i := slices.IndexFunc(cs, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		fail(w, r, http.StatusNotFound, "Category not found")
		return
	}
	s.categories[u] = slices.Delete(cs, i, i+1)
	s.notes[u] = slices.DeleteFunc(s.notes[u], func(n models.Note) bool { return n.Category == id })
	render.JSON(w, r, map[string]string{"message": "Category and associated notes deleted successfully"})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ns := append([]models.Note{}, s.notes[currentUser(r)]...)
	s.mu.Unlock()
	render.JSON(w, r, ns)
}

func (s *Server) handleListNotesByCategory(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.categories[currentUser(r)], func(c models.Category) bool { return c.ID == id }) {
		fail(w, r, http.StatusNotFound, "Category not found")
		return
	}
	ns := []models.Note{}
	for _, n := range s.notes[currentUser(r)] {
		if n.Category == id {
			ns = append(ns, n)
		}
	}
	render.JSON(w, r, ns)
}

// findNote must be called with s.mu held.
func (s *Server) findNote(r *http.Request) (int, bool) {
	id := models.ID(chi.URLParam(r, "id"))
	i := slices.IndexFunc(s.notes[currentUser(r)], func(n models.Note) bool { return n.ID == id })
	return i, i >= 0
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findNote(r)
	if !ok {
		fail(w, r, http.StatusNotFound, "Note not found")
		return
	}
	render.JSON(w, r, s.notes[currentUser(r)][i])
}

// hasCategory must be called with s.mu held.
func (s *Server) hasCategory(u string, id models.ID) bool {
	return slices.ContainsFunc(s.categories[u], func(c models.Category) bool { return c.ID == id })
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !s.decode(w, r, &req) {
		return
	}
	u := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCategory(u, req.Category) {
		fail(w, r, http.StatusBadRequest, "Invalid category")
		return
	}
	n := models.Note{
		ID:        s.newID(),
		Title:     req.Title,
		Category:  req.Category,
		Content:   req.Content,
		Pinned:    req.Pinned,
		FontSize:  req.FontSize,
		FontStyle: req.FontStyle,
	}.WithDefaults()
	s.notes[u] = append(s.notes[u], n)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, n)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !s.decode(w, r, &req) {
		return
	}
	u := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findNote(r)
	if !ok {
		fail(w, r, http.StatusNotFound, "Note not found")
		return
	}
	if !s.hasCategory(u, req.Category) {
		fail(w, r, http.StatusBadRequest, "Invalid category")
		return
	}
	n := &s.notes[u][i]
	n.Title = req.Title
	n.Category = req.Category
	n.Content = req.Content
	n.FontSize = req.FontSize
	n.FontStyle = req.FontStyle
	*n = n.WithDefaults()
	render.JSON(w, r, *n)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findNote(r)
	if !ok {
		fail(w, r, http.StatusNotFound, "Note not found")
		return
	}
	s.notes[u] = slices.Delete(s.notes[u], i, i+1)
	render.JSON(w, r, map[string]string{"message": "Note deleted successfully"})
}

func (s *Server) handleTogglePin(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findNote(r)
	if !ok {
		fail(w, r, http.StatusNotFound, "Note not found")
		return
	}
	n := &s.notes[u][i]
	n.Pinned = !n.Pinned
	render.JSON(w, r, map[string]any{"message": "Pin status updated", "pinned": n.Pinned})
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	fixed := FixGrammar(req.Text)
	if fixed == req.Text {
		render.JSON(w, r, map[string]string{"message": models.NoFixRequired})
		return
	}
	render.JSON(w, r, map[string]string{"correctedText": fixed})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	render.JSON(w, r, map[string]string{"summary": Summarize(req.Text)})
}

// FixGrammar is the fake grammar model: it trims the text, capitalizes the
// first letter and makes sure the text ends with a sentence terminator.
func FixGrammar(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(t)
	t = string(unicode.ToUpper(r)) + t[size:]
	if !strings.ContainsAny(t[len(t)-1:], ".!?") {
		t += "."
	}
	return t
}

// Summarize is the fake summarizer: the first sentence of text.
func Summarize(text string) string {
	t := strings.TrimSpace(text)
	if i := strings.IndexAny(t, ".!?"); i >= 0 {
		return t[:i+1]
	}
	return t
}

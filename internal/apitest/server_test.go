package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestFixGrammarAndSummarize(t *testing.T) {
	assert.Equal(t, "Hello world.", FixGrammar("hello world"))
	assert.Equal(t, "Done!", FixGrammar("Done!"))
	assert.Equal(t, "", FixGrammar(""))
	assert.Equal(t, "First one.", Summarize("First one. Second one."))
	assert.Equal(t, "no terminator", Summarize("  no terminator "))
}

func TestServer_LoginAndAuthenticatedCall(t *testing.T) {
	s := New()
	defer s.Close()
	s.AddUser("alice", "pw", "Alice")
	s.AddCategory("alice", "Work")

	resp := doJSON(t, s, http.MethodPost, "/login/", "", map[string]string{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tp models.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tp))
	require.NoError(t, tp.Validate())

	resp = doJSON(t, s, http.MethodGet, "/categories/", tp.Access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cs []models.Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cs))
	require.Len(t, cs, 1)
	assert.Equal(t, "Work", cs[0].Title)

	resp = doJSON(t, s, http.MethodPost, "/login/", "", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ExpiredAccessAndRefresh(t *testing.T) {
	s := New()
	defer s.Close()
	tp := s.AddUser("bob", "pw", "Bob")

	s.ExpireAccessTokens()
	resp := doJSON(t, s, http.MethodGet, "/notes/", tp.Access, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, s, http.MethodPost, "/refresh/", "", map[string]string{"refresh": tp.Refresh})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rr models.RefreshResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rr))
	require.NotEmpty(t, rr.Access)
	assert.Empty(t, rr.Refresh)

	resp = doJSON(t, s, http.MethodGet, "/notes/", rr.Access, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.RevokeRefreshTokens()
	resp = doJSON(t, s, http.MethodPost, "/refresh/", "", map[string]string{"refresh": tp.Refresh})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_FaultInjectionAndCounts(t *testing.T) {
	s := New()
	defer s.Close()
	tp := s.AddUser("carol", "pw", "")

	s.FailNext(http.MethodGet, "/notes/", http.StatusInternalServerError, 1)

	resp := doJSON(t, s, http.MethodGet, "/notes/", tp.Access, nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp = doJSON(t, s, http.MethodGet, "/notes/", tp.Access, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 2, s.Count(http.MethodGet, "/notes/"))
	s.ResetCounts()
	assert.Equal(t, 0, s.Count(http.MethodGet, "/notes/"))
}

func TestServer_DeleteCategoryCascades(t *testing.T) {
	s := New()
	defer s.Close()
	tp := s.AddUser("dave", "pw", "")
	work := s.AddCategory("dave", "Work")
	home := s.AddCategory("dave", "Home")
	s.AddNote("dave", models.Note{Title: "a", Category: work.ID, Content: "x"})
	kept := s.AddNote("dave", models.Note{Title: "b", Category: home.ID, Content: "y"})

	resp := doJSON(t, s, http.MethodDelete, "/categories/delete/"+work.ID.String()+"/", tp.Access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []models.Note{kept}, s.Notes("dave"))
	assert.Equal(t, []models.Category{home}, s.Categories("dave"))
}

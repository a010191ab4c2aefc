package apitest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

// Claims carried by issued tokens.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"token_type"`
	Gen  int    `json:"gen"`
}

type ctxKey struct{}

var errBadToken = errors.New("token is invalid or expired")

func itoa(n int) string { return strconv.Itoa(n) }

// issuePair must be called with s.mu held.
func (s *Server) issuePair(username string) (models.TokenPair, error) {
	access, err := s.sign(username, tokenAccess, s.accessGen, 5*time.Minute)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := s.sign(username, tokenRefresh, s.refreshGen, 24*time.Hour)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *Server) sign(username, typ string, gen int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        fmt.Sprintf("%s-%d-%d", typ, gen, now.UnixNano()),
		},
		Type: typ,
		Gen:  gen,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parse must be called with s.mu held.
func (s *Server) parse(raw, typ string) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errBadToken
	}
	gen := s.accessGen
	if typ == tokenRefresh {
		gen = s.refreshGen
	}
	if claims.Type != typ || claims.Gen != gen {
		return "", errBadToken
	}
	if _, ok := s.users[claims.Subject]; !ok {
		return "", errBadToken
	}
	return claims.Subject, nil
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || raw == "" {
			unauthorized(w, r, "Authentication credentials were not provided.")
			return
		}

		s.mu.Lock()
		username, err := s.parse(raw, tokenAccess)
		s.mu.Unlock()
		if err != nil {
			unauthorized(w, r, "Given token not valid for any token type")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, username)))
	})
}

func currentUser(r *http.Request) string {
	u, _ := r.Context().Value(ctxKey{}).(string)
	return u
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]string{"detail": detail})
}

// Package services contains application services for the NoteVault client.
// This file defines the authentication service: login, register, logout and
// reading the signed-in identity back from the session store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/session"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotLoggedIn is returned by Current when the session holds no access token.
var ErrNotLoggedIn = errors.New("not logged in")

// API is the subset of the REST client used for authentication.
type API interface {
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Register(ctx context.Context, r models.Registration) (*models.TokenPair, error)
	GetProfile(ctx context.Context) (*models.Profile, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate, persist the token pair and username, then fetch
//     the first name. A failed profile fetch does not fail the login.
//   - Register: create the account and sign in with the returned tokens.
//   - Logout: wipe the session.
//   - Current: decode the stored access token for display. The signature is
//     not verified; the server remains the authority.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*Identity, error)
	Register(ctx context.Context, r models.Registration) (*Identity, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*Identity, error)
}

// Identity describes the signed-in user.
type Identity struct {
	Username  string
	FirstName string
	ExpiresAt time.Time
}

// Expired reports whether the access token has expired. A refresh may still
// succeed.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// DisplayName prefers the first name.
func (i Identity) DisplayName() string {
	if i.FirstName != "" {
		return i.FirstName
	}
	return i.Username
}

type authService struct {
	api   API
	store session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store. The client must share the store so that the profile call
// after login is authenticated.
func NewAuthService(api API, store session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{api: api, store: store, log: log}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*Identity, error) {
	defer common.WipeByteArray(password)

	tp, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.signIn(ctx, username, "", tp)
}

func (a *authService) Register(ctx context.Context, r models.Registration) (*Identity, error) {
	tp, err := a.api.Register(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.signIn(ctx, r.Username, r.FirstName, tp)
}

func (a *authService) signIn(ctx context.Context, username, firstName string, tp *models.TokenPair) (*Identity, error) {
	values := map[string]string{
		session.KeyAccess:    tp.Access,
		session.KeyRefresh:   tp.Refresh,
		session.KeyUsername:  username,
		session.KeyFirstName: firstName,
	}
	if err := a.store.SetMany(ctx, values); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	if firstName == "" {
		p, err := a.api.GetProfile(ctx)
		if err != nil {
			a.log.Warn(ctx, "profile fetch failed", "username", username, "error", err)
		} else if err := a.store.Set(ctx, session.KeyFirstName, p.FirstName); err != nil {
			return nil, fmt.Errorf("session saving error: %w", err)
		}
	}

	a.log.Info(ctx, "signed in", "username", username)
	return a.Current(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("session clearing error: %w", err)
	}
	return nil
}

func (a *authService) Current(ctx context.Context) (*Identity, error) {
	access, err := a.store.Get(ctx, session.KeyAccess)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, ErrNotLoggedIn
	}

	id := &Identity{}
	if id.Username, err = a.store.Get(ctx, session.KeyUsername); err != nil {
		return nil, err
	}
	if id.FirstName, err = a.store.Get(ctx, session.KeyFirstName); err != nil {
		return nil, err
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(access, &claims); err != nil {
		a.log.Debug(ctx, "access token is not a readable JWT", "error", err)
		return id, nil
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	if id.Username == "" {
		id.Username = claims.Subject
	}
	return id, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/notify"
	"github.com/dmitrijs2005/notevault/internal/client/services"
	"github.com/dmitrijs2005/notevault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and signs the new user in.
func (a *App) Register(ctx context.Context) error {
	var r models.Registration
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter username", &r.Username},
		{"Enter email", &r.Email},
		{"Enter first name", &r.FirstName},
		{"Enter last name", &r.LastName},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	r.Password = string(password)
	common.WipeByteArray(password)

	id, err := a.auth.Register(ctx, r)
	if err != nil {
		notify.Error(a.toasts, client.UserMessage(err, "Registration failed"))
		return err
	}
	return a.signedIn(ctx, id)
}

// Login prompts for credentials and loads the dashboard on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	id, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		notify.Error(a.toasts, client.UserMessage(err, "Login failed"))
		return err
	}
	return a.signedIn(ctx, id)
}

func (a *App) signedIn(ctx context.Context, id *services.Identity) error {
	a.userName = id.Username
	a.editing = false
	notify.Success(a.toasts, fmt.Sprintf("Welcome, %s!", id.DisplayName()))
	return a.Home(ctx)
}

// Logout wipes the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.editing = false
	notify.Info(a.toasts, "Logged out")
	return nil
}

// Whoami prints the signed-in identity and when the access token expires.
func (a *App) Whoami(ctx context.Context) error {
	id, err := a.auth.Current(ctx)
	if errors.Is(err, services.ErrNotLoggedIn) {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, formatIdentity(id, time.Now()))
	return nil
}

package panel

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/LIZZY274/hotspot-panel/internal/auth"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Validation and
// credential errors are shown inline and the REPL keeps running.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, username, password)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) || errors.Is(err, auth.ErrInvalidCredentials) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Printf("Welcome, %s (%s). Session expires %s.\n",
		session.Username, session.Role, session.TokenExpiry.Format("2006-01-02 15:04"))
	return nil
}

// Register prompts for the registration form and creates an account.
// A successful registration is an immediate login.
func (a *App) Register(ctx context.Context) error {
	in := auth.RegisterInput{}
	var err error

	if in.Username, err = getSimpleText(a.reader, "Username", os.Stdout); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if in.FirstName, err = getSimpleText(a.reader, "First name", os.Stdout); err != nil {
		return err
	}
	if in.LastName, err = getSimpleText(a.reader, "Last name", os.Stdout); err != nil {
		return err
	}
	if in.Password, err = getPassword(os.Stdout, "Password"); err != nil {
		return err
	}
	if in.Confirm, err = getPassword(os.Stdout, "Confirm password"); err != nil {
		return err
	}

	session, err := a.auth.Register(ctx, in)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) || errors.Is(err, auth.ErrDuplicateAccount) {
			fmt.Println(err)
			return nil
		}
		return err
	}

	fmt.Printf("Account created. Logged in as %s.\n", session.Username)
	return nil
}

// Logout destroys the session and its cached data.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// Passwd changes the logged-in account's password.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}

	switch err := a.auth.ChangePassword(ctx, current, next); {
	case err == nil:
		fmt.Println("Password changed.")
	case errors.Is(err, auth.ErrWrongPassword),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrNotAuthenticated):
		fmt.Println(err)
	default:
		return err
	}
	return nil
}

// Whoami prints the current session.
func (a *App) Whoami(ctx context.Context) error {
	s := a.auth.CurrentSession()
	if s == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s session=%s expires=%s\n",
		s.Username, s.Email, s.Role, s.SessionID, s.TokenExpiry.Format("2006-01-02 15:04"))
	return nil
}

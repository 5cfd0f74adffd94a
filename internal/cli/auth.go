package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sheetdash/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. Auth failures print a
// one-line message and leave the session unauthenticated; they are never
// fatal to the REPL.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) {
			fmt.Println("Login failed:", authErr.Err)
		} else {
			fmt.Println("Login failed:", err)
		}
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Email)

	// An open channel keeps its connect-time credential; refresh it.
	if token, terr := a.session.Token(ctx); terr == nil {
		if rerr := a.channel.Reauthenticate(ctx, token); rerr != nil {
			a.log.Error(ctx, "channel reauthentication failed", "error", rerr)
		}
	}
	return nil
}

// Signup prompts for account details and creates a new account, starting a
// session on success.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Signup(ctx, name, email, password)
	if err != nil {
		fmt.Println("Signup failed:", err)
		return err
	}

	fmt.Printf("Account created. Logged in as %s\n", user.Email)
	return nil
}

// Logout clears the persisted token and session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.tables = nil
	fmt.Println("Logged out")
	return nil
}

package cli

import (
	"context"
	"errors"
	"os"

	"adminboard/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to authenticate the session.
// A failed attempt prints the store's reason and leaves the session as-is.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer WipeByteArray(password)

	user, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) || errors.Is(err, session.ErrSuperseded) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	printlnFn("Welcome back,", user.Name+"!")
	return nil
}

// SignUp prompts for the new account details and authenticates the session
// with the created user on success.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer WipeByteArray(password)

	user, err := a.sessions.SignUp(ctx, email, string(password), name)
	if err != nil {
		if errors.Is(err, session.ErrEmailTaken) ||
			errors.Is(err, session.ErrWeakPassword) ||
			errors.Is(err, session.ErrSuperseded) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	printlnFn("Account created for", user.Email)
	return nil
}

// Forgot runs the forgot-password flow: an existence check only, no email
// is sent and no session state changes.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.ForgotPassword(ctx, email); err != nil {
		if errors.Is(err, session.ErrAccountNotFound) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}
	printlnFn("Password reset instructions sent to", email)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout()
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the current session's identity.
func (a *App) WhoAmI(ctx context.Context) error {
	cur := a.sessions.Current()
	if !cur.Authenticated {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(cur.User.Name, "<"+cur.User.Email+">", "role:", string(cur.User.Role))
	return nil
}

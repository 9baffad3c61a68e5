package cli

import (
	"context"
	"fmt"

	"animegallery/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing; they point at the interactive input helpers.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. Any failure
// shows one generic message; whether the username even exists is never
// revealed.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.auth.Login(ctx, username, string(password)) {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", username)
	return nil
}

// Logout clears the session unconditionally.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

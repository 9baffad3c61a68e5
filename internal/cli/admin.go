package cli

import (
	"context"
	"fmt"

	"animegallery/internal/common"
	"animegallery/internal/models"
)

// Users prints every account. Admin only; enforced by the REPL dispatch,
// visible in the help text.
func (a *App) Users(ctx context.Context) error {
	for _, acc := range a.auth.Accounts() {
		fmt.Fprintf(a.out, "%-12s %-20s %s\n", acc.Role, acc.Username, acc.ID)
	}
	return nil
}

// AddUser interactively registers a new account.
func (a *App) AddUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		fmt.Fprintln(a.out, "Username must not be empty.")
		return nil
	}

	role := models.RoleUser
	answer, err := getSimpleText(a.reader, "Role (user/admin)", a.out)
	if err != nil {
		return err
	}
	if answer == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.CreateAccount(ctx, username, string(password), role)
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Passwd changes the password of an account picked by username.
func (a *App) Passwd(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	id := ""
	for _, acc := range a.auth.Accounts() {
		if acc.Username == username {
			id = acc.ID
			break
		}
	}
	if id == "" {
		// Fall through with an unknown id: the store answers with the
		// same "User not found." the admin UI always showed.
		id = "user-unknown"
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.ChangePassword(ctx, id, string(password))
	fmt.Fprintln(a.out, res.Message)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lead4tomorrow/daybook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing: they point at the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and two passwords and attempts to create
// an account. On success the flow returns the user to the login prompt; it
// never signs them in. Password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	return a.auth.Register(ctx, email, string(password), string(confirm), func() {
		fmt.Println("Account created. You can now log in.")
	})
}

// Login prompts for credentials and authenticates. On success the settings
// for the account are loaded immediately, mirroring how the signed-in
// screen appeared with the stored profile already fetched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}
	fmt.Println("Logged in.")

	if err := a.profile.Load(ctx); err != nil {
		// A missing profile is normal for a fresh account.
		a.logger.Warn(ctx, "profile load failed", "error", err)
	}
	return nil
}

// Logout resets the session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lead4tomorrow/daybook/internal/client/services"
)

// DeleteAccount confirms and permanently removes the signed-in account.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}

	answer, err := getSimpleText(a.reader,
		"Delete your account? This permanently removes your profile and preferences. (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.account.Delete(ctx); err != nil {
		return err
	}
	fmt.Println("Account deleted.")
	return nil
}

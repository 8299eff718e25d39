package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// terminalPermission implements the platform permission prompt on the
// terminal: a y/n question instead of a system dialog.
type terminalPermission struct {
	reader *bufio.Reader
}

func (t terminalPermission) RequestPermission(ctx context.Context) (bool, error) {
	answer, err := getSimpleText(t.reader, "Allow notifications? (y/n)", os.Stdout)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Token simulates the platform handing over a push token. On a device this
// callback arrives out of band after permission is granted; here the user
// pastes the hex token.
func (a *App) Token(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: token <hex>")
	}

	if err := a.device.HandleToken(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Device state:", a.device.State())
	return nil
}

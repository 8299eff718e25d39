package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lead4tomorrow/daybook/internal/client/api"
)

// Entry prints the daily calendar message: today's with no arguments, or a
// specific one with "entry <month> <day>".
func (a *App) Entry(ctx context.Context, args []string) error {
	var (
		e   *api.Entry
		err error
	)

	switch len(args) {
	case 0:
		e, err = a.entry.Today(ctx)
	case 2:
		var month, day int
		if month, err = strconv.Atoi(args[0]); err != nil {
			return errors.New("usage: entry [<month> <day>]")
		}
		if day, err = strconv.Atoi(args[1]); err != nil {
			return errors.New("usage: entry [<month> <day>]")
		}
		e, err = a.entry.Day(ctx, month, day)
	default:
		return errors.New("usage: entry [<month> <day>]")
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n%s\n", e.Theme, e.Entry)
	return nil
}

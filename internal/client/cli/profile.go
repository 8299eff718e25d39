package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/lead4tomorrow/daybook/internal/client/services"
	"github.com/lead4tomorrow/daybook/internal/tzx"
)

// ShowProfile prints the current notification profile, collapsed or not.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}

	st := a.profile.State()
	if !st.Enabled {
		fmt.Println("Notifications are off.")
		return nil
	}

	fmt.Println("Method:", st.Method)
	if st.Method == services.MethodText {
		fmt.Printf("Phone: %s (%s)\n", st.Phone, st.Carrier)
	}
	fmt.Println("Timezone:", tzx.LabelFor(st.Timezone))
	fmt.Println("Notification time:", st.Time)
	if st.Collapsed {
		fmt.Println("(saved — use 'edit' to change)")
	}
	return nil
}

// EditProfile walks the user through the editable fields. Empty input
// keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}
	a.profile.EditAgain()
	a.profile.Enable()
	st := a.profile.State()

	method, err := getSimpleText(a.reader, fmt.Sprintf("Delivery method, Email or Text [%s]", st.Method), os.Stdout)
	if err != nil {
		return err
	}
	if method != "" {
		if err := a.profile.SetMethod(method); err != nil {
			return err
		}
	}

	if a.profile.State().Method == services.MethodText {
		phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone number [%s]", st.Phone), os.Stdout)
		if err != nil {
			return err
		}
		if phone != "" {
			a.profile.SetPhone(phone)
		}

		carrier, err := getSimpleText(a.reader, fmt.Sprintf("Carrier %v [%s]", services.Carriers, st.Carrier), os.Stdout)
		if err != nil {
			return err
		}
		if carrier != "" {
			if err := a.profile.SetCarrier(carrier); err != nil {
				return err
			}
		}
	}

	for _, z := range tzx.Zones {
		fmt.Printf("  %-20s %s\n", z.ID, z.Label)
	}
	zone, err := getSimpleText(a.reader, fmt.Sprintf("Timezone [%s]", st.Timezone), os.Stdout)
	if err != nil {
		return err
	}
	if zone != "" {
		if err := a.profile.SetTimezone(zone); err != nil {
			return err
		}
	}

	at, err := getSimpleText(a.reader, fmt.Sprintf("Notification time HH:MM [%s]", st.Time), os.Stdout)
	if err != nil {
		return err
	}
	if at != "" {
		if err := a.profile.SetTime(at); err != nil {
			return err
		}
	}

	fmt.Println("Use 'save' to push the profile to the server.")
	return nil
}

// SaveProfile pushes the edited profile to the backend.
func (a *App) SaveProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}
	if err := a.profile.Save(ctx); err != nil {
		return err
	}
	fmt.Println("Profile saved.")
	return nil
}

// Notifications toggles notifications on or off. Turning them on asks the
// platform (here: the terminal) for permission first, matching the mobile
// permission prompt.
func (a *App) Notifications(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return services.ErrNotSignedIn
	}
	if len(args) != 1 {
		return errors.New("usage: notifications on|off")
	}

	switch args[0] {
	case "on":
		granted, err := a.device.RequestPermission(ctx, terminalPermission{reader: a.reader})
		if err != nil {
			return err
		}
		if !granted {
			fmt.Println("Notification permission denied.")
			return nil
		}
		a.profile.Enable()
		fmt.Println("Notifications enabled. Use 'edit' and 'save' to set preferences.")
		return nil

	case "off":
		if err := a.profile.Disable(ctx); err != nil {
			return err
		}
		fmt.Println("Notifications disabled, preferences reset.")
		return nil

	default:
		return errors.New("usage: notifications on|off")
	}
}

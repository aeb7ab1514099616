package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if a.user.Username != "" {
		s = a.user.Username + " "
	}
	s = s + string(a.Mode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root logs the user in and runs the menu until exit. A failed login ends
// the program.
func (a *App) Root(ctx context.Context) {

	a.println("=== WELCOME TO THE MAC RESERVATION SYSTEM ===")

	if err := a.Login(ctx); err != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.Mode() != ModeLocal {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

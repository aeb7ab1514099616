package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/macreserve/internal/client/client"
	"github.com/dmitrijs2005/macreserve/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and binds the App to the user on success.
// Bad credentials yield common.ErrorUnauthorized.
func (a *App) Login(ctx context.Context) error {

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.service.Login(ctx, userName, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			a.println("Wrong username or password.")
		case errors.Is(err, client.ErrUnavailable):
			a.println("Server unavailable, try again later.")
		default:
			a.println("Login failed:", err)
		}
		return err
	}

	a.user = user
	a.logger.Debug(ctx, "logged in", "user", user.Username)
	return nil
}

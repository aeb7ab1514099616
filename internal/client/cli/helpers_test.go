package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/client/config"
	"github.com/dmitrijs2005/macreserve/internal/client/services"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/reservations"
	"github.com/stretchr/testify/require"
)

// pipedStdin makes GetPassword read from the line reader instead of the
// terminal.
func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

// newLocalApp builds an App over a fresh in-process system, reading the
// given lines as user input.
func newLocalApp(t *testing.T, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	pipedStdin(t)

	var out bytes.Buffer
	svc := services.NewLocalService(reservations.NewSystem(logging.Nop()))
	app := newApp(testConfig(), svc, logging.Nop(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	app.mode = ModeLocal
	return app, &out
}

// loggedInApp is newLocalApp with the user already authenticated.
func loggedInApp(t *testing.T, user, pass string, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	app, out := newLocalApp(t, lines...)
	u, err := app.service.Login(context.Background(), user, pass)
	require.NoError(t, err)
	app.user = u
	return app, out
}

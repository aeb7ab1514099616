package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_FullSession(t *testing.T) {
	app, out := newLocalApp(t,
		"acxell", "1234",
		"1", "01-06-2025", "morning", "1",
		"available", "01-06-2025", "morning",
		"1", "01-06-2025", "morning", "9",
		"2",
		"3", "R-1",
		"2",
		"4",
	)

	app.Root(context.Background())

	s := out.String()
	assert.Contains(t, s, "=== WELCOME TO THE MAC RESERVATION SYSTEM ===")
	assert.Contains(t, s, "mac (acxell local)> ")
	assert.Contains(t, s, "Reservation registered: R-1 - MAC-1 (01-06-2025 morning)")
	assert.Contains(t, s, "Invalid selection.")
	assert.Contains(t, s, "R-1 - MAC-1 (01-06-2025 morning) | Duration: 9 hours")
	assert.Contains(t, s, "Return registered.")
	assert.Contains(t, s, "You have no active reservations.")
	assert.Contains(t, s, "Logging out. Goodbye!")
}

func TestRoot_WrongPasswordEndsSession(t *testing.T) {
	app, out := newLocalApp(t, "acxell", "nope", "2")

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Wrong username or password.")
	assert.NotContains(t, out.String(), "MAIN MENU")
	assert.False(t, app.isLoggedIn())
}

func TestLogin_UsesSeams(t *testing.T) {
	app, _ := newLocalApp(t)

	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })

	var wiped []byte
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "renato", nil }
	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) {
		wiped = []byte("5678")
		return wiped, nil
	}

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "renato", app.user.Username)
	assert.Equal(t, []byte{0, 0, 0, 0}, wiped)

	getPassword = func(_ *bufio.Reader, _ io.Writer) ([]byte, error) { return []byte("bad"), nil }
	app.user.Username = ""
	assert.ErrorIs(t, app.Login(context.Background()), common.ErrorUnauthorized)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_PasswordComparedExactly(t *testing.T) {
	app, _ := newLocalApp(t, "acxell", " 1234")
	assert.ErrorIs(t, app.Login(context.Background()), common.ErrorUnauthorized)
	assert.False(t, app.isLoggedIn())

	app, _ = newLocalApp(t, "acxell", "1234")
	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "acxell", app.user.Username)
}

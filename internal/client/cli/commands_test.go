package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/client/client"
	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve_BooksShiftWindow(t *testing.T) {
	ctx := context.Background()
	app, out := loggedInApp(t, "acxell", "1234", "01-06-2025", "afternoon", "2")

	require.NoError(t, app.Reserve(ctx))
	assert.Contains(t, out.String(), "1. MAC-1 - MacBook Pro")
	assert.Contains(t, out.String(), "Reservation registered: R-1 - MAC-2 (01-06-2025 afternoon)")

	mine, err := app.service.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "12:00", mine[0].StartTime)
	assert.Equal(t, "21:00", mine[0].EndTime)
}

func TestReserve_SpanishShiftAlias(t *testing.T) {
	app, out := loggedInApp(t, "acxell", "1234", "01-06-2025", "mañana", "1")

	require.NoError(t, app.Reserve(context.Background()))
	assert.Contains(t, out.String(), "(01-06-2025 morning)")
}

func TestReserve_NothingLeft(t *testing.T) {
	ctx := context.Background()
	app, out := loggedInApp(t, "acxell", "1234", "01-06-2025", "morning")

	for _, code := range []string{"MAC-1", "MAC-2", "MAC-3", "MAC-4", "MAC-5", "MAC-6"} {
		_, err := app.service.Reserve(ctx, code, "01-06-2025", models.ShiftMorning, "08:00", "17:00")
		require.NoError(t, err)
	}

	require.NoError(t, app.Reserve(ctx))
	assert.Contains(t, out.String(), "No equipment available.")
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{common.ErrorDuplicateReservation, "an active reservation already exists"},
		{common.ErrorNotFound, "Not found."},
		{common.ErrorInvalidInput, "Invalid input"},
		{common.ErrorUnauthorized, "log in again"},
		{client.ErrUnavailable, "Server unavailable"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		app, out := newLocalApp(t)
		app.printError(tt.err)
		assert.Contains(t, out.String(), tt.want)
	}
}

func TestReserve_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"bad date", []string{"2025/06/01"}, "Invalid date"},
		{"bad shift", []string{"01-06-2025", "night"}, "Invalid shift"},
		{"not a number", []string{"01-06-2025", "morning", "x"}, "Enter a valid number."},
		{"out of range", []string{"01-06-2025", "morning", "7"}, "Invalid selection."},
		{"zero", []string{"01-06-2025", "morning", "0"}, "Invalid selection."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := loggedInApp(t, "renato", "5678", tt.lines...)

			err := app.Reserve(context.Background())
			assert.ErrorIs(t, err, common.ErrorInvalidInput)
			assert.Contains(t, out.String(), tt.want)

			mine, err := app.service.ListMine(context.Background())
			require.NoError(t, err)
			assert.Empty(t, mine)
		})
	}
}

func TestMine_ShowsDuration(t *testing.T) {
	ctx := context.Background()
	app, out := loggedInApp(t, "acxell", "1234")

	require.NoError(t, app.Mine(ctx))
	assert.Contains(t, out.String(), "You have no active reservations.")

	_, err := app.service.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)

	require.NoError(t, app.Mine(ctx))
	assert.Contains(t, out.String(), "R-1 - MAC-1 (01-06-2025 morning) | Duration: 9 hours")
}

func TestReturn(t *testing.T) {
	ctx := context.Background()
	app, out := loggedInApp(t, "acxell", "1234", "R-7", "R-1")

	_, err := app.service.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)

	err = app.Return(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, out.String(), "Reservation not found or not owned by the current user.")

	require.NoError(t, app.Return(ctx))
	assert.Contains(t, out.String(), "Return registered.")

	mine, err := app.service.ListMine(ctx)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestAvailableEquipmentHistory(t *testing.T) {
	ctx := context.Background()
	app, out := loggedInApp(t, "acxell", "1234", "01-06-2025", "morning", "MAC-1", "MAC-9")

	_, err := app.service.Reserve(ctx, "MAC-1", "01-06-2025", models.ShiftMorning, "08:00", "17:00")
	require.NoError(t, err)

	require.NoError(t, app.Available(ctx))
	assert.Contains(t, out.String(), "1. MAC-2 - iMac")
	assert.NotContains(t, out.String(), "MAC-1 - MacBook Pro")

	require.NoError(t, app.Equipment(ctx))
	assert.Contains(t, out.String(), "MAC-1 - MacBook Pro [reserved]")
	assert.Contains(t, out.String(), "MAC-6 - Mac Pro [available]")

	require.NoError(t, app.History(ctx))
	assert.Contains(t, out.String(), "R-1 - MAC-1 (01-06-2025 morning) | acxell | active")

	err = app.History(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, out.String(), "Unknown equipment: MAC-9")
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/macreserve/internal/client/client"
	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

// errInvalidSelection marks a non-numeric or out-of-range menu pick.
var errInvalidSelection = fmt.Errorf("selection: %w", common.ErrorInvalidInput)

// printError turns failures into user-facing messages.
func (a *App) printError(err error) {
	switch {
	case errors.Is(err, common.ErrorDuplicateReservation):
		a.println("Warning: an active reservation already exists for this equipment in that shift.")
	case errors.Is(err, common.ErrorNotFound):
		a.println("Not found.")
	case errors.Is(err, common.ErrorInvalidInput):
		a.println("Invalid input:", err)
	case errors.Is(err, common.ErrorUnauthorized):
		a.println("Session is no longer valid, please restart and log in again.")
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, try again later.")
	default:
		a.println("Error:", err)
	}
}

// askSlot prompts for a date and a shift and validates both.
func (a *App) askSlot() (string, models.Shift, error) {
	date, err := getSimpleText(a.reader, "Date (DD-MM-YYYY)", a.out)
	if err != nil {
		return "", "", err
	}
	if err := models.ValidateDate(date); err != nil {
		a.println("Invalid date. Use DD-MM-YYYY.")
		return "", "", err
	}

	raw, err := getSimpleText(a.reader, "Shift (morning/afternoon)", a.out)
	if err != nil {
		return "", "", err
	}
	shift, err := models.ParseShift(raw)
	if err != nil {
		a.println("Invalid shift. Only 'morning' or 'afternoon'.")
		return "", "", err
	}

	return date, shift, nil
}

func (a *App) printEquipment(items []models.Equipment) {
	for i, e := range items {
		a.printf("%d. %s\n", i+1, e)
	}
}

// Reserve asks for a slot, lists the free equipment and books the pick for
// the shift's fixed time window.
func (a *App) Reserve(ctx context.Context) error {
	date, shift, err := a.askSlot()
	if err != nil {
		return err
	}

	items, err := a.service.ListAvailable(ctx, date, shift)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.println("No equipment available.")
		return nil
	}

	a.println("Available equipment:")
	a.printEquipment(items)

	raw, err := getSimpleText(a.reader, "Select the equipment number", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		a.println("Enter a valid number.")
		return errInvalidSelection
	}
	if n < 1 || n > len(items) {
		a.println("Invalid selection.")
		return errInvalidSelection
	}

	window := shiftWindows[shift]
	r, err := a.service.Reserve(ctx, items[n-1].Code, date, shift, window.Start, window.End)
	if err != nil {
		a.printError(err)
		return err
	}

	a.println("Reservation registered:", r)
	return nil
}

// Mine lists the user's active reservations with their duration.
func (a *App) Mine(ctx context.Context) error {
	items, err := a.service.ListMine(ctx)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.println("You have no active reservations.")
		return nil
	}

	for _, r := range items {
		d, err := r.Duration()
		if err != nil {
			d = "n/a"
		}
		a.printf("%s | Duration: %s\n", r, d)
	}
	return nil
}

// Return finishes one of the user's reservations by id.
func (a *App) Return(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Reservation ID to return", a.out)
	if err != nil {
		return err
	}

	if _, err := a.service.Return(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("Reservation not found or not owned by the current user.")
			return err
		}
		a.printError(err)
		return err
	}

	a.println("Return registered.")
	return nil
}

// Available lists the equipment free for a date and shift.
func (a *App) Available(ctx context.Context) error {
	date, shift, err := a.askSlot()
	if err != nil {
		return err
	}

	items, err := a.service.ListAvailable(ctx, date, shift)
	if err != nil {
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.println("No equipment available.")
		return nil
	}

	a.printEquipment(items)
	return nil
}

// Equipment lists every machine with its advisory status.
func (a *App) Equipment(ctx context.Context) error {
	items, err := a.service.Equipment(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	for _, e := range items {
		a.printf("%s [%s]\n", e, e.Status)
	}
	return nil
}

// History lists every reservation made for one machine.
func (a *App) History(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Equipment code (e.g. MAC-1)", a.out)
	if err != nil {
		return err
	}

	items, err := a.service.History(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("Unknown equipment:", code)
			return err
		}
		a.printError(err)
		return err
	}
	if len(items) == 0 {
		a.println("No reservations yet.")
		return nil
	}

	for _, r := range items {
		a.printf("%s | %s | %s\n", r, r.Owner, r.Status)
	}
	return nil
}

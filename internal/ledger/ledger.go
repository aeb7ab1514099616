// Package ledger owns the append-only list of reservations and enforces that
// at most one active reservation exists per (equipment, date, shift).
//
// Every operation runs under a single mutex, so the duplicate check, id
// allocation and append in Create happen atomically even when several
// sessions share one Ledger.
package ledger

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

const idPrefix = "R-"

// StatusSetter updates the advisory status of equipment.
type StatusSetter interface {
	SetStatus(code string, status models.EquipmentStatus) error
}

type Ledger struct {
	mu           sync.Mutex
	reservations []*models.Reservation
	equipment    StatusSetter
}

func New(equipment StatusSetter) *Ledger {
	return &Ledger{equipment: equipment}
}

// NextID returns the identifier the next created reservation will get.
func (l *Ledger) NextID() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.nextID()
}

func (l *Ledger) nextID() string {
	return idPrefix + strconv.Itoa(len(l.reservations)+1)
}

// Len returns the number of reservations ever created.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.reservations)
}

// ListAvailable returns the items of all that have no active reservation for
// date and shift, keeping the order of all. The equipment status flag is
// not consulted.
func (l *Ledger) ListAvailable(all []models.Equipment, date string, shift models.Shift) []models.Equipment {
	l.mu.Lock()
	defer l.mu.Unlock()

	available := make([]models.Equipment, 0, len(all))
	for _, e := range all {
		if l.findActive(e.Code, date, shift) == nil {
			available = append(available, e)
		}
	}
	return available
}

// Create books equipment for owner. It fails with ErrorDuplicateReservation,
// leaving the ledger untouched, when the slot is already held.
func (l *Ledger) Create(equipment models.Equipment, owner models.User, date string, shift models.Shift, start, end string) (models.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if existing := l.findActive(equipment.Code, date, shift); existing != nil {
		return models.Reservation{}, fmt.Errorf("%s %s %s held by %s: %w",
			equipment.Code, date, shift, existing.ID, common.ErrorDuplicateReservation)
	}

	r := &models.Reservation{
		ID:        l.nextID(),
		Equipment: equipment.Code,
		Owner:     owner.Username,
		Date:      date,
		Shift:     shift,
		StartTime: start,
		EndTime:   end,
		Status:    models.ReservationActive,
	}

	// Status is advisory; an unknown code must not undo a valid booking.
	_ = l.equipment.SetStatus(r.Equipment, models.EquipmentReserved)
	l.reservations = append(l.reservations, r)

	return *r, nil
}

// ListMine returns owner's active reservations in creation order.
func (l *Ledger) ListMine(owner models.User) []models.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	mine := make([]models.Reservation, 0)
	for _, r := range l.reservations {
		if r.IsActive() && r.Owner == owner.Username {
			mine = append(mine, *r)
		}
	}
	return mine
}

// Close finishes the first reservation with the given id that belongs to
// owner and flags its equipment available again. The returned bool reports
// whether the reservation was active. Closing a finished reservation
// returns it unchanged and leaves the equipment status alone, since the slot
// may have been booked again. A wrong id or a foreign reservation yields
// ErrorNotFound and changes nothing.
func (l *Ledger) Close(id string, owner models.User) (models.Reservation, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.reservations {
		if r.ID != id || r.Owner != owner.Username {
			continue
		}
		if !r.IsActive() {
			return *r, false, nil
		}
		r.Status = models.ReservationFinished
		_ = l.equipment.SetStatus(r.Equipment, models.EquipmentAvailable)
		return *r, true, nil
	}

	return models.Reservation{}, false, fmt.Errorf("reservation %q for %s: %w", id, owner.Username, common.ErrorNotFound)
}

// History returns every reservation ever made for the equipment code,
// active or finished, in creation order.
func (l *Ledger) History(code string) []models.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make([]models.Reservation, 0)
	for _, r := range l.reservations {
		if r.Equipment == code {
			history = append(history, *r)
		}
	}
	return history
}

// ActiveCount returns how many reservations are currently active.
func (l *Ledger) ActiveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, r := range l.reservations {
		if r.IsActive() {
			n++
		}
	}
	return n
}

func (l *Ledger) findActive(code, date string, shift models.Shift) *models.Reservation {
	for _, r := range l.reservations {
		if r.Occupies(code, date, shift) {
			return r
		}
	}
	return nil
}

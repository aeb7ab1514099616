package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/common"
)

type ReservationStatus string

const (
	ReservationActive   ReservationStatus = "active"
	ReservationFinished ReservationStatus = "finished"
)

// Reservation books one equipment item for a date and shift. The only state
// transition is active -> finished, performed by the owner.
type Reservation struct {
	ID        string            `json:"id"`
	Equipment string            `json:"equipment"`
	Owner     string            `json:"owner"`
	Date      string            `json:"date"`
	Shift     Shift             `json:"shift"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Status    ReservationStatus `json:"status"`
}

func (r Reservation) IsActive() bool {
	return r.Status == ReservationActive
}

// Occupies reports whether r holds the (equipment, date, shift) slot.
func (r Reservation) Occupies(equipment, date string, shift Shift) bool {
	return r.IsActive() && r.Equipment == equipment && r.Date == date && r.Shift == shift
}

// Hours returns the whole hours between StartTime and EndTime on one day.
// EndTime before StartTime is rejected rather than wrapped around midnight.
func (r Reservation) Hours() (int, error) {
	start, err := time.Parse(ClockLayout, r.StartTime)
	if err != nil {
		return 0, fmt.Errorf("start time %q: %w", r.StartTime, common.ErrorInvalidInput)
	}
	end, err := time.Parse(ClockLayout, r.EndTime)
	if err != nil {
		return 0, fmt.Errorf("end time %q: %w", r.EndTime, common.ErrorInvalidInput)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end time %s before start time %s: %w", r.EndTime, r.StartTime, common.ErrorInvalidInput)
	}

	return int(end.Sub(start) / time.Hour), nil
}

// Duration renders Hours as "N hours".
func (r Reservation) Duration() (string, error) {
	h, err := r.Hours()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d hours", h), nil
}

func (r Reservation) String() string {
	return fmt.Sprintf("%s - %s (%s %s)", r.ID, r.Equipment, r.Date, r.Shift)
}

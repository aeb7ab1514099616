package reservations

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/events"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/metrics"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

// Session is the current-user view of a System.
type Session struct {
	system *System
	user   models.User
	logger logging.Logger
}

func (s *Session) User() models.User {
	return s.user
}

func (s *Session) Equipment() []models.Equipment {
	return s.system.Equipment()
}

// ListAvailable returns the equipment free for date and shift.
func (s *Session) ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error) {
	if err := validateSlot(date, shift); err != nil {
		return nil, err
	}
	return s.system.ledger.ListAvailable(s.system.equipment.ListAll(), date, shift), nil
}

// Reserve books the equipment identified by code for the session user.
//
// Input is validated before the ledger is touched: malformed date or clock
// values, an unknown shift or end before start give ErrorInvalidInput, an
// unknown code gives ErrorNotFound. A taken slot gives
// ErrorDuplicateReservation.
func (s *Session) Reserve(ctx context.Context, code, date string, shift models.Shift, start, end string) (models.Reservation, error) {
	if err := validateSlot(date, shift); err != nil {
		return models.Reservation{}, err
	}
	if _, err := (models.Reservation{StartTime: start, EndTime: end}).Hours(); err != nil {
		return models.Reservation{}, err
	}

	item, err := s.system.equipment.Get(code)
	if err != nil {
		return models.Reservation{}, err
	}

	r, err := s.system.ledger.Create(item, s.user, date, shift, start, end)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateReservation) {
			metrics.ObserveReservationConflict()
			s.logger.Warn(ctx, "reservation rejected", "equipment", code, "date", date, "shift", shift, "error", err)
		}
		return models.Reservation{}, err
	}

	metrics.ObserveReservationCreated(string(shift))
	metrics.IncActive()
	s.logger.Info(ctx, "reservation created", "id", r.ID, "equipment", r.Equipment, "date", r.Date, "shift", r.Shift)
	s.system.events.Publish(events.Event{Type: events.ReservationCreated, Reservation: r})

	return r, nil
}

// ListMine returns the session user's active reservations.
func (s *Session) ListMine(ctx context.Context) []models.Reservation {
	return s.system.ledger.ListMine(s.user)
}

// Close returns (finishes) one of the session user's reservations. Closing
// a reservation that is already finished returns it and does nothing else.
func (s *Session) Close(ctx context.Context, id string) (models.Reservation, error) {
	r, changed, err := s.system.ledger.Close(id, s.user)
	if err != nil {
		metrics.ObserveReturn("not_found")
		s.logger.Warn(ctx, "return rejected", "id", id, "error", err)
		return models.Reservation{}, err
	}
	if !changed {
		s.logger.Debug(ctx, "reservation already returned", "id", r.ID)
		return r, nil
	}

	metrics.ObserveReturn("success")
	metrics.DecActive()
	s.logger.Info(ctx, "reservation returned", "id", r.ID, "equipment", r.Equipment)
	s.system.events.Publish(events.Event{Type: events.ReservationReturned, Reservation: r})

	return r, nil
}

// History lists every reservation ever made for the equipment code.
func (s *Session) History(ctx context.Context, code string) ([]models.Reservation, error) {
	if _, err := s.system.equipment.Get(code); err != nil {
		return nil, err
	}
	return s.system.ledger.History(code), nil
}

// Package reservations is the facade the menu and the gRPC server drive. It
// wires the identity and equipment registries to the ledger and binds
// operations to an authenticated user through a Session.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/equipment"
	"github.com/dmitrijs2005/macreserve/internal/events"
	"github.com/dmitrijs2005/macreserve/internal/identity"
	"github.com/dmitrijs2005/macreserve/internal/ledger"
	"github.com/dmitrijs2005/macreserve/internal/logging"
	"github.com/dmitrijs2005/macreserve/internal/metrics"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/seed"
)

// System is shared by every session and safe for concurrent use.
type System struct {
	users     *identity.Registry
	equipment *equipment.Registry
	ledger    *ledger.Ledger
	events    *events.Hub
	logger    logging.Logger
}

func New(users *identity.Registry, eq *equipment.Registry, logger logging.Logger) *System {
	return &System{
		users:     users,
		equipment: eq,
		ledger:    ledger.New(eq),
		events:    events.NewHub(),
		logger:    logger.With("module", "reservations"),
	}
}

// NewSystem builds a System from the fixed seed users and equipment.
func NewSystem(logger logging.Logger) *System {
	return New(
		identity.NewRegistry(seed.Users()),
		equipment.NewRegistry(seed.Equipment()),
		logger,
	)
}

// Authenticate checks the credentials and binds a new Session to the user.
// On failure it returns ErrorUnauthorized and no session.
func (s *System) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.Authenticate(username, password)
	if err != nil {
		metrics.ObserveLogin("denied")
		s.logger.Warn(ctx, "login denied", "user", username)
		return nil, err
	}

	metrics.ObserveLogin("success")
	s.logger.Info(ctx, "login", "user", user.Username)
	return s.newSession(user), nil
}

// SessionFor rebinds a session for a user whose identity was already
// verified, e.g. from a signed token.
func (s *System) SessionFor(username string) (*Session, error) {
	user, err := s.users.Lookup(username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	return s.newSession(user), nil
}

// Equipment lists every machine with its advisory status, in seed order.
func (s *System) Equipment() []models.Equipment {
	return s.equipment.ListAll()
}

// Events is the feed of reservation changes made through any session.
func (s *System) Events() *events.Hub {
	return s.events
}

func (s *System) newSession(user models.User) *Session {
	return &Session{
		system: s,
		user:   user,
		logger: s.logger.With("user", user.Username),
	}
}

func validateSlot(date string, shift models.Shift) error {
	if err := models.ValidateDate(date); err != nil {
		return err
	}
	if !shift.Valid() {
		return fmt.Errorf("shift %q: %w", shift, common.ErrorInvalidInput)
	}
	return nil
}

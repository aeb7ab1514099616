package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/reservations"
)

// localService runs the reservation system inside the CLI process.
type localService struct {
	system *reservations.System

	mu      sync.RWMutex
	session *reservations.Session
}

func NewLocalService(system *reservations.System) ReservationService {
	return &localService{system: system}
}

func (s *localService) current() (*reservations.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, common.ErrorUnauthorized
	}
	return s.session, nil
}

func (s *localService) Login(ctx context.Context, username, password string) (models.User, error) {
	session, err := s.system.Authenticate(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return session.User(), nil
}

// Ping always succeeds; there is no server to lose.
func (s *localService) Ping(ctx context.Context) error {
	return nil
}

func (s *localService) Equipment(ctx context.Context) ([]models.Equipment, error) {
	session, err := s.current()
	if err != nil {
		return nil, err
	}
	return session.Equipment(), nil
}

func (s *localService) ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error) {
	session, err := s.current()
	if err != nil {
		return nil, err
	}
	return session.ListAvailable(ctx, date, shift)
}

func (s *localService) Reserve(ctx context.Context, code, date string, shift models.Shift, start, end string) (models.Reservation, error) {
	session, err := s.current()
	if err != nil {
		return models.Reservation{}, err
	}
	return session.Reserve(ctx, code, date, shift, start, end)
}

func (s *localService) ListMine(ctx context.Context) ([]models.Reservation, error) {
	session, err := s.current()
	if err != nil {
		return nil, err
	}
	return session.ListMine(ctx), nil
}

func (s *localService) Return(ctx context.Context, id string) (models.Reservation, error) {
	session, err := s.current()
	if err != nil {
		return models.Reservation{}, err
	}
	return session.Close(ctx, id)
}

func (s *localService) History(ctx context.Context, code string) ([]models.Reservation, error) {
	session, err := s.current()
	if err != nil {
		return nil, err
	}
	return session.History(ctx, code)
}

func (s *localService) Close(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

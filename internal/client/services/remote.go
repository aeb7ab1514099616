package services

import (
	"context"

	"github.com/dmitrijs2005/macreserve/internal/client/client"
	"github.com/dmitrijs2005/macreserve/internal/models"
)

// remoteService forwards every call to the reservation server.
type remoteService struct {
	client client.Client
}

func NewRemoteService(c client.Client) ReservationService {
	return &remoteService{client: c}
}

func (s *remoteService) Login(ctx context.Context, username, password string) (models.User, error) {
	name, err := s.client.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}
	return models.User{Username: name}, nil
}

func (s *remoteService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *remoteService) Equipment(ctx context.Context) ([]models.Equipment, error) {
	return s.client.ListEquipment(ctx)
}

func (s *remoteService) ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error) {
	return s.client.ListAvailable(ctx, date, shift)
}

func (s *remoteService) Reserve(ctx context.Context, code, date string, shift models.Shift, start, end string) (models.Reservation, error) {
	return s.client.Reserve(ctx, client.ReserveParams{
		Equipment: code,
		Date:      date,
		Shift:     shift,
		StartTime: start,
		EndTime:   end,
	})
}

func (s *remoteService) ListMine(ctx context.Context) ([]models.Reservation, error) {
	return s.client.ListMine(ctx)
}

func (s *remoteService) Return(ctx context.Context, id string) (models.Reservation, error) {
	return s.client.Return(ctx, id)
}

func (s *remoteService) History(ctx context.Context, code string) ([]models.Reservation, error) {
	return s.client.History(ctx, code)
}

func (s *remoteService) Close(ctx context.Context) error {
	return s.client.Close()
}

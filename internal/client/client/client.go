package client

import (
	"context"

	"github.com/dmitrijs2005/macreserve/internal/models"
)

// ReserveParams describes one booking request.
type ReserveParams struct {
	Equipment string
	Date      string
	Shift     models.Shift
	StartTime string
	EndTime   string
}

type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (string, error)
	Ping(ctx context.Context) error
	ListEquipment(ctx context.Context) ([]models.Equipment, error)
	ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error)
	Reserve(ctx context.Context, p ReserveParams) (models.Reservation, error)
	ListMine(ctx context.Context) ([]models.Reservation, error)
	Return(ctx context.Context, id string) (models.Reservation, error)
	History(ctx context.Context, equipment string) ([]models.Reservation, error)
}

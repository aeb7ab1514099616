// Package services contains the application service the CLI drives. The
// same ReservationService contract is served either in process, straight
// from a reservations.System, or remotely through the gRPC client.
package services

import (
	"context"

	"github.com/dmitrijs2005/macreserve/internal/models"
)

// ReservationService defines the operations the menu offers.
//
// Contract:
//   - Login binds the service to a user; every other call except Ping and
//     Close fails with common.ErrorUnauthorized until it succeeds.
//   - Failures are reported with the sentinels of internal/common
//     (ErrorDuplicateReservation, ErrorNotFound, ErrorInvalidInput) or
//     client.ErrUnavailable when the server cannot be reached.
type ReservationService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Ping(ctx context.Context) error
	Equipment(ctx context.Context) ([]models.Equipment, error)
	ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error)
	Reserve(ctx context.Context, code, date string, shift models.Shift, start, end string) (models.Reservation, error)
	ListMine(ctx context.Context) ([]models.Reservation, error)
	Return(ctx context.Context, id string) (models.Reservation, error)
	History(ctx context.Context, code string) ([]models.Reservation, error)
	Close(ctx context.Context) error
}

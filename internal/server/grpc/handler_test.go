package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func loginRPC(t *testing.T, c rpc.ReservationsClient, user, pass string) context.Context {
	t.Helper()
	resp, err := c.Login(context.Background(), &rpc.LoginRequest{Username: user, Password: pass})
	require.NoError(t, err)
	require.Equal(t, user, resp.Username)
	require.NotEmpty(t, resp.AccessToken)
	return withToken(context.Background(), resp.AccessToken)
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{fmt.Errorf("x: %w", common.ErrorDuplicateReservation), codes.AlreadyExists},
		{fmt.Errorf("x: %w", common.ErrorInvalidInput), codes.InvalidArgument},
		{fmt.Errorf("x: %w", common.ErrorNotFound), codes.NotFound},
		{errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, status.Code(toStatus(tt.err)), tt.err.Error())
	}

	// internal details stay on the server
	assert.Equal(t, common.ErrorInternal.Error(), status.Convert(toStatus(errors.New("db exploded"))).Message())
}

func TestPing(t *testing.T) {
	c := startBufconn(t, newTestServer(t))

	resp, err := c.Ping(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestLogin_WrongPassword(t *testing.T) {
	c := startBufconn(t, newTestServer(t))

	_, err := c.Login(context.Background(), &rpc.LoginRequest{Username: "acxell", Password: "bad"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestProtectedWithoutToken(t *testing.T) {
	c := startBufconn(t, newTestServer(t))

	_, err := c.ListMine(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestReservationFlowOverGRPC(t *testing.T) {
	c := startBufconn(t, newTestServer(t))
	ctx := loginRPC(t, c, "acxell", "1234")

	eq, err := c.ListEquipment(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, eq.Items, 6)

	reply, err := c.Reserve(ctx, &rpc.ReserveRequest{
		Equipment: "MAC-1", Date: "01-06-2025", Shift: "morning", StartTime: "08:00", EndTime: "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "R-1", reply.Reservation.ID)
	assert.Equal(t, models.ShiftMorning, reply.Reservation.Shift)

	avail, err := c.ListAvailable(ctx, &rpc.ListAvailableRequest{Date: "01-06-2025", Shift: "mañana"})
	require.NoError(t, err)
	assert.Len(t, avail.Items, 5)
	for _, e := range avail.Items {
		assert.NotEqual(t, "MAC-1", e.Code)
	}

	_, err = c.Reserve(ctx, &rpc.ReserveRequest{
		Equipment: "MAC-1", Date: "01-06-2025", Shift: "morning", StartTime: "08:00", EndTime: "17:00",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	mine, err := c.ListMine(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)

	other := loginRPC(t, c, "daniel", "4321")
	_, err = c.Return(other, &rpc.ReturnRequest{ID: "R-1"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	closed, err := c.Return(ctx, &rpc.ReturnRequest{ID: "R-1"})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationFinished, closed.Reservation.Status)

	avail, err = c.ListAvailable(ctx, &rpc.ListAvailableRequest{Date: "01-06-2025", Shift: "morning"})
	require.NoError(t, err)
	assert.Len(t, avail.Items, 6)

	hist, err := c.History(other, &rpc.HistoryRequest{Equipment: "MAC-1"})
	require.NoError(t, err)
	require.Len(t, hist.Items, 1)
	assert.Equal(t, "acxell", hist.Items[0].Owner)
}

func TestReserve_InvalidArguments(t *testing.T) {
	c := startBufconn(t, newTestServer(t))
	ctx := loginRPC(t, c, "renato", "5678")

	tests := []struct {
		name string
		req  *rpc.ReserveRequest
		want codes.Code
	}{
		{"bad shift", &rpc.ReserveRequest{Equipment: "MAC-1", Date: "01-06-2025", Shift: "night", StartTime: "08:00", EndTime: "09:00"}, codes.InvalidArgument},
		{"bad date", &rpc.ReserveRequest{Equipment: "MAC-1", Date: "june", Shift: "morning", StartTime: "08:00", EndTime: "09:00"}, codes.InvalidArgument},
		{"inverted times", &rpc.ReserveRequest{Equipment: "MAC-1", Date: "01-06-2025", Shift: "morning", StartTime: "10:00", EndTime: "09:00"}, codes.InvalidArgument},
		{"unknown equipment", &rpc.ReserveRequest{Equipment: "PC-1", Date: "01-06-2025", Shift: "morning", StartTime: "08:00", EndTime: "09:00"}, codes.NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Reserve(ctx, tt.req)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestHistory_UnknownEquipment(t *testing.T) {
	c := startBufconn(t, newTestServer(t))
	ctx := loginRPC(t, c, "renato", "5678")

	_, err := c.History(ctx, &rpc.HistoryRequest{Equipment: "MAC-7"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

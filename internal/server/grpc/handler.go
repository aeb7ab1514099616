package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/rpc"
	"github.com/dmitrijs2005/macreserve/internal/server/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ rpc.ReservationsServer = (*GRPCServer)(nil)

// toStatus maps domain sentinels onto gRPC codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorDuplicateReservation):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*rpc.PingResponse, error) {

	return &rpc.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {

	session, err := s.system.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	token, err := auth.GenerateToken(session.User().Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &rpc.LoginResponse{AccessToken: token, Username: session.User().Username}, nil

}

func (s *GRPCServer) ListEquipment(ctx context.Context, req *emptypb.Empty) (*rpc.EquipmentList, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &rpc.EquipmentList{Items: session.Equipment()}, nil

}

func (s *GRPCServer) ListAvailable(ctx context.Context, req *rpc.ListAvailableRequest) (*rpc.EquipmentList, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shift, err := models.ParseShift(req.Shift)
	if err != nil {
		return nil, toStatus(err)
	}

	items, err := session.ListAvailable(ctx, req.Date, shift)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rpc.EquipmentList{Items: items}, nil

}

func (s *GRPCServer) Reserve(ctx context.Context, req *rpc.ReserveRequest) (*rpc.ReservationReply, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	shift, err := models.ParseShift(req.Shift)
	if err != nil {
		return nil, toStatus(err)
	}

	r, err := session.Reserve(ctx, req.Equipment, req.Date, shift, req.StartTime, req.EndTime)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rpc.ReservationReply{Reservation: r}, nil

}

func (s *GRPCServer) ListMine(ctx context.Context, req *emptypb.Empty) (*rpc.ReservationList, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &rpc.ReservationList{Items: session.ListMine(ctx)}, nil

}

func (s *GRPCServer) Return(ctx context.Context, req *rpc.ReturnRequest) (*rpc.ReservationReply, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	r, err := session.Close(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rpc.ReservationReply{Reservation: r}, nil

}

func (s *GRPCServer) History(ctx context.Context, req *rpc.HistoryRequest) (*rpc.ReservationList, error) {

	session, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := session.History(ctx, req.Equipment)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rpc.ReservationList{Items: items}, nil

}

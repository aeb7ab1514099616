package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/models"
	"github.com/dmitrijs2005/macreserve/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.ReservationsClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a client for endpointURL. No connection is made
// until the first call.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewReservationsClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Login authenticates and keeps the access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {

	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.setToken(resp.AccessToken)

	return resp.Username, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	resp, err := s.client.ListEquipment(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) ListAvailable(ctx context.Context, date string, shift models.Shift) ([]models.Equipment, error) {
	resp, err := s.client.ListAvailable(ctx, &rpc.ListAvailableRequest{Date: date, Shift: string(shift)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) Reserve(ctx context.Context, p ReserveParams) (models.Reservation, error) {
	req := &rpc.ReserveRequest{
		Equipment: p.Equipment,
		Date:      p.Date,
		Shift:     string(p.Shift),
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}

	resp, err := s.client.Reserve(ctx, req)
	if err != nil {
		return models.Reservation{}, s.mapError(err)
	}
	return resp.Reservation, nil
}

func (s *GRPCClient) ListMine(ctx context.Context) ([]models.Reservation, error) {
	resp, err := s.client.ListMine(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) Return(ctx context.Context, id string) (models.Reservation, error) {
	resp, err := s.client.Return(ctx, &rpc.ReturnRequest{ID: id})
	if err != nil {
		return models.Reservation{}, s.mapError(err)
	}
	return resp.Reservation, nil
}

func (s *GRPCClient) History(ctx context.Context, equipment string) ([]models.Reservation, error) {
	resp, err := s.client.History(ctx, &rpc.HistoryRequest{Equipment: equipment})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Items, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrorDuplicateReservation, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorInvalidInput, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, st.Message())
	case codes.Internal:
		return common.ErrorInternal
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

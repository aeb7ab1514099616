package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "macreserve.Reservations"

const (
	PingFullMethodName          = "/" + ServiceName + "/Ping"
	LoginFullMethodName         = "/" + ServiceName + "/Login"
	ListEquipmentFullMethodName = "/" + ServiceName + "/ListEquipment"
	ListAvailableFullMethodName = "/" + ServiceName + "/ListAvailable"
	ReserveFullMethodName       = "/" + ServiceName + "/Reserve"
	ListMineFullMethodName      = "/" + ServiceName + "/ListMine"
	ReturnFullMethodName        = "/" + ServiceName + "/Return"
	HistoryFullMethodName       = "/" + ServiceName + "/History"
)

// ReservationsServer is implemented by the gRPC server.
type ReservationsServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ListEquipment(context.Context, *emptypb.Empty) (*EquipmentList, error)
	ListAvailable(context.Context, *ListAvailableRequest) (*EquipmentList, error)
	Reserve(context.Context, *ReserveRequest) (*ReservationReply, error)
	ListMine(context.Context, *emptypb.Empty) (*ReservationList, error)
	Return(context.Context, *ReturnRequest) (*ReservationReply, error)
	History(context.Context, *HistoryRequest) (*ReservationList, error)
}

func unaryHandler[Req, Resp any](fullMethod string, call func(ReservationsServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReservationsServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReservationsServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes macreserve.Reservations for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReservationsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(PingFullMethodName, ReservationsServer.Ping)},
		{MethodName: "Login", Handler: unaryHandler(LoginFullMethodName, ReservationsServer.Login)},
		{MethodName: "ListEquipment", Handler: unaryHandler(ListEquipmentFullMethodName, ReservationsServer.ListEquipment)},
		{MethodName: "ListAvailable", Handler: unaryHandler(ListAvailableFullMethodName, ReservationsServer.ListAvailable)},
		{MethodName: "Reserve", Handler: unaryHandler(ReserveFullMethodName, ReservationsServer.Reserve)},
		{MethodName: "ListMine", Handler: unaryHandler(ListMineFullMethodName, ReservationsServer.ListMine)},
		{MethodName: "Return", Handler: unaryHandler(ReturnFullMethodName, ReservationsServer.Return)},
		{MethodName: "History", Handler: unaryHandler(HistoryFullMethodName, ReservationsServer.History)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "macreserve.proto",
}

func RegisterReservationsServer(s grpc.ServiceRegistrar, srv ReservationsServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ReservationsClient is the client API for macreserve.Reservations.
type ReservationsClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	ListEquipment(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*EquipmentList, error)
	ListAvailable(ctx context.Context, in *ListAvailableRequest, opts ...grpc.CallOption) (*EquipmentList, error)
	Reserve(ctx context.Context, in *ReserveRequest, opts ...grpc.CallOption) (*ReservationReply, error)
	ListMine(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ReservationList, error)
	Return(ctx context.Context, in *ReturnRequest, opts ...grpc.CallOption) (*ReservationReply, error)
	History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*ReservationList, error)
}

type reservationsClient struct {
	cc grpc.ClientConnInterface
}

// NewReservationsClient returns a stub that always calls with the JSON codec.
func NewReservationsClient(cc grpc.ClientConnInterface) ReservationsClient {
	return &reservationsClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reservationsClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingFullMethodName, in, opts)
}

func (c *reservationsClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, LoginFullMethodName, in, opts)
}

func (c *reservationsClient) ListEquipment(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*EquipmentList, error) {
	return invoke[EquipmentList](ctx, c.cc, ListEquipmentFullMethodName, in, opts)
}

func (c *reservationsClient) ListAvailable(ctx context.Context, in *ListAvailableRequest, opts ...grpc.CallOption) (*EquipmentList, error) {
	return invoke[EquipmentList](ctx, c.cc, ListAvailableFullMethodName, in, opts)
}

func (c *reservationsClient) Reserve(ctx context.Context, in *ReserveRequest, opts ...grpc.CallOption) (*ReservationReply, error) {
	return invoke[ReservationReply](ctx, c.cc, ReserveFullMethodName, in, opts)
}

func (c *reservationsClient) ListMine(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ReservationList, error) {
	return invoke[ReservationList](ctx, c.cc, ListMineFullMethodName, in, opts)
}

func (c *reservationsClient) Return(ctx context.Context, in *ReturnRequest, opts ...grpc.CallOption) (*ReservationReply, error) {
	return invoke[ReservationReply](ctx, c.cc, ReturnFullMethodName, in, opts)
}

func (c *reservationsClient) History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*ReservationList, error) {
	return invoke[ReservationList](ctx, c.cc, HistoryFullMethodName, in, opts)
}

package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/macreserve/internal/common"
	"github.com/dmitrijs2005/macreserve/internal/reservations"
	"github.com/dmitrijs2005/macreserve/internal/rpc"
	"github.com/dmitrijs2005/macreserve/internal/server/auth"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionKey ctxKey = "session"

var publicMethods = map[string]bool{
	rpc.PingFullMethodName:  true,
	rpc.LoginFullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	username, err := auth.GetUsernameFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	session, err := s.system.SessionFor(username)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "unknown user")
	}

	return handler(withSession(ctx, session), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx, span := otel.Tracer("macreserve/grpc").Start(ctx, info.FullMethod)
	defer span.End()

	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		span.SetStatus(otelcodes.Error, status.Code(err).String())
	}

	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

func withSession(ctx context.Context, session *reservations.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func sessionFromContext(ctx context.Context) (*reservations.Session, error) {
	session, ok := ctx.Value(sessionKey).(*reservations.Session)
	if !ok || session == nil {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	return session, nil
}

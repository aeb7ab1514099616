// Package client talks to the reservation gRPC server.
//
// GRPCClient manages the connection, attaches the access token obtained by
// Login to every call through a unary interceptor, and maps gRPC status
// codes back onto the sentinel errors of internal/common, so callers can
// use errors.Is the same way they do against the in-process system.
// Transport failures surface as ErrUnavailable.
package client

package transport

import (
	"context"
)

type Kind string

func (k Kind) String() string { return string(k) }

const (
	KindGRPC Kind = "grpc"
)

type (
	serverTransportKey struct{}
	clientTransportKey struct{}
)

type Header interface {
	Get(key string) string
	Set(key, value string)
	Keys() []string
}

// Transporter carries per-call transport details through the context.
type Transporter interface {
	Kind() Kind
	// Endpoint of the server, or the dial target on the client side.
	Endpoint() string

	FullMethod() string

	RequestHeader() Header

	ReplyHeader() Header
}

func NewServerContext(ctx context.Context, tr Transporter) context.Context {
	return context.WithValue(ctx, serverTransportKey{}, tr)
}

func FromServerContext(ctx context.Context) (tr Transporter, ok bool) {
	tr, ok = ctx.Value(serverTransportKey{}).(Transporter)
	return
}

func NewClientContext(ctx context.Context, tr Transporter) context.Context {
	return context.WithValue(ctx, clientTransportKey{}, tr)
}

func FromClientContext(ctx context.Context) (tr Transporter, ok bool) {
	tr, ok = ctx.Value(clientTransportKey{}).(Transporter)
	return
}

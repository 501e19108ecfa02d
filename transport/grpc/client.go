package grpc

import (
	"context"
	"crypto/tls"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"

	"github.com/kanengo/church/middleware"
)

type ClientOption func(options *clientOptions)

func WithEndpoint(endpoint string) ClientOption {
	return func(options *clientOptions) {
		options.endpoint = endpoint
	}
}

func WithTlsConfig(tlsConfig *tls.Config) ClientOption {
	return func(options *clientOptions) {
		options.tlsConf = tlsConfig
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(options *clientOptions) {
		options.timeout = timeout
	}
}

func WithMiddleware(ms ...middleware.Middleware) ClientOption {
	return func(options *clientOptions) {
		options.middleware = ms
	}
}

func WithUnaryInterceptor(in ...grpc.UnaryClientInterceptor) ClientOption {
	return func(options *clientOptions) {
		options.ints = in
	}
}

func WithOptions(opts ...grpc.DialOption) ClientOption {
	return func(options *clientOptions) {
		options.grpcOpts = opts
	}
}

type clientOptions struct {
	endpoint   string
	tlsConf    *tls.Config
	timeout    time.Duration
	middleware []middleware.Middleware
	ints       []grpc.UnaryClientInterceptor
	grpcOpts   []grpc.DialOption
}

func Dial(ctx context.Context, opts ...ClientOption) (*grpc.ClientConn, error) {
	return dial(ctx, false, opts...)
}

func DialInsecure(ctx context.Context, opts ...ClientOption) (*grpc.ClientConn, error) {
	return dial(ctx, true, opts...)
}

func dial(ctx context.Context, insecure bool, opts ...ClientOption) (*grpc.ClientConn, error) {
	options := clientOptions{
		timeout: 2 * time.Second,
	}
	for _, o := range opts {
		o(&options)
	}

	ints := []grpc.UnaryClientInterceptor{
		unaryClientInterceptor(options.middleware, options.timeout),
	}

	if len(options.ints) > 0 {
		ints = append(ints, options.ints...)
	}

	grpcOpts := []grpc.DialOption{
		grpc.WithChainUnaryInterceptor(ints...),
	}

	if insecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(grpcinsecure.NewCredentials()))
	}

	if options.tlsConf != nil {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(credentials.NewTLS(options.tlsConf)))
	}

	if len(options.grpcOpts) > 0 {
		grpcOpts = append(grpcOpts, options.grpcOpts...)
	}

	return grpc.DialContext(ctx, options.endpoint, grpcOpts...)
}

package selector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanengo/church/church"
	"github.com/kanengo/church/middleware"
	"github.com/kanengo/church/transport"
)

type testTransport struct {
	fullMethod string
}

func (tr *testTransport) Kind() transport.Kind { return transport.KindGRPC }
func (tr *testTransport) Endpoint() string { return "" }
func (tr *testTransport) FullMethod() string { return tr.fullMethod }
func (tr *testTransport) RequestHeader() transport.Header { return nil }
func (tr *testTransport) ReplyHeader() transport.Header { return nil }

func tag(calls *int) middleware.Middleware {
	return func(next middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			*calls++
			return next(ctx, req)
		}
	}
}

func handler(ctx context.Context, req any) (any, error) {
	return "reply", nil
}

func TestServerSelector(t *testing.T) {
	tests := []struct {
		name      string
		builder   func(m middleware.Middleware) *Builder
		operation string
		want      int
	}{
		{
			name:      "prefix",
			builder:   func(m middleware.Middleware) *Builder { return Server(m).Prefix("/church.v1.Conditional/") },
			operation: "/church.v1.Conditional/Branch",
			want:      1,
		},
		{
			name:      "regex",
			builder:   func(m middleware.Middleware) *Builder { return Server(m).Regex(`/church.v1.Conditional/[A-Z]+`) },
			operation: "/church.v1.Conditional/NOT",
			want:      1,
		},
		{
			name:      "path",
			builder:   func(m middleware.Middleware) *Builder { return Server(m).Path("/church.v1.Conditional/Not") },
			operation: "/church.v1.Conditional/Branch",
			want:      0,
		},
		{
			name: "match func",
			builder: func(m middleware.Middleware) *Builder {
				return Server(m).Match(func(ctx context.Context, operation string) church.Selector {
					return church.Of(operation == "/grpc.health.v1.Health/Check")
				})
			},
			operation: "/grpc.health.v1.Health/Check",
			want:      1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			ctx := transport.NewServerContext(context.Background(), &testTransport{fullMethod: tt.operation})

			reply, err := tt.builder(tag(&calls)).Build()(handler)(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, "reply", reply)
			assert.Equal(t, tt.want, calls)
		})
	}
}

func TestClientSelector(t *testing.T) {
	var calls int
	m := Client(tag(&calls)).Prefix("/church.v1").Build()

	ctx := transport.NewClientContext(context.Background(), &testTransport{fullMethod: "/church.v1.Conditional/Branch"})
	_, err := m(handler)(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// a server context does not count for a client selector
	ctx = transport.NewServerContext(context.Background(), &testTransport{fullMethod: "/church.v1.Conditional/Branch"})
	_, err = m(handler)(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSelectorInvalidMatch(t *testing.T) {
	handled := false
	m := Server().Match(func(ctx context.Context, operation string) church.Selector {
		return church.Selector(0)
	}).Build()

	ctx := transport.NewServerContext(context.Background(), &testTransport{fullMethod: "/x"})
	_, err := m(func(ctx context.Context, req any) (any, error) {
		handled = true
		return nil, nil
	})(ctx, nil)
	assert.ErrorIs(t, err, church.ErrInvalidSelector)
	assert.False(t, handled)
}

package recovery

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/kanengo/church/errors"
	"github.com/kanengo/church/internal/log"
	"github.com/kanengo/church/middleware"
)

var ErrUnknownRequest = errors.InternalServer("UNKNOWN", "unknown request error")

type HandlerFunc func(ctx context.Context, req, err any) error

type Option func(*options)

type options struct {
	handler HandlerFunc
}

func WithHandler(h HandlerFunc) Option {
	return func(o *options) {
		o.handler = h
	}
}

// Recovery turns a panic in the wrapped handler into an error.
func Recovery(opts ...Option) middleware.Middleware {
	op := options{
		handler: func(ctx context.Context, req, err any) error {
			return ErrUnknownRequest
		},
	}
	for _, o := range opts {
		o(&op)
	}
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (reply any, err error) {
			startTime := time.Now()
			defer func() {
				if rerr := recover(); rerr != nil {
					buf := make([]byte, 64<<10)
					n := runtime.Stack(buf, false)
					log.Error("[recovery] handler panic",
						zap.String("panic", fmt.Sprint(rerr)),
						zap.Any("req", req),
						zap.Duration("latency", time.Since(startTime)),
						zap.ByteString("stack", buf[:n]),
					)
					err = op.handler(ctx, req, rerr)
				}
			}()
			return handler(ctx, req)
		}
	}
}

package logging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kanengo/church/errors"
	"github.com/kanengo/church/middleware"
	"github.com/kanengo/church/transport"
)

// Server logs every request the wrapped handler serves.
func Server(logger *zap.Logger) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (reply any, err error) {
			var (
				kind      string
				operation string
			)
			startTime := time.Now()
			if info, ok := transport.FromServerContext(ctx); ok {
				kind = info.Kind().String()
				operation = info.FullMethod()
			}
			reply, err = handler(ctx, req)
			fields := []zap.Field{
				zap.String("kind", "server"),
				zap.String("component", kind),
				zap.String("operation", operation),
				zap.Int("code", errors.Code(err)),
				zap.String("reason", errors.Reason(err)),
				zap.Duration("latency", time.Since(startTime)),
			}
			if err != nil {
				logger.Error("[logging] request failed", append(fields, zap.Error(err))...)
				return
			}
			logger.Info("[logging] request served", fields...)
			return
		}
	}
}

package middleware

import (
	"context"
)

type Handler func(ctx context.Context, req any) (any, error)

type Middleware func(Handler) Handler

// Chain composes ms so that ms[0] is the outermost.
func Chain(ms ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(ms) - 1; i >= 0; i-- {
			next = ms[i](next)
		}
		return next
	}
}

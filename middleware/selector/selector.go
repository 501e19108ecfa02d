// Package selector applies middleware only to the operations it matches.
package selector

import (
	"context"
	"regexp"
	"strings"

	"github.com/kanengo/church/church"
	"github.com/kanengo/church/middleware"
	"github.com/kanengo/church/transport"
)

type (
	transporter func(ctx context.Context) (transport.Transporter, bool)
	MatchFunc   func(ctx context.Context, operation string) church.Selector
)

var (
	serverTransporter transporter = transport.FromServerContext
	clientTransporter transporter = transport.FromClientContext
)

type Builder struct {
	client bool

	prefix []string
	regex  []*regexp.Regexp
	path   []string
	match  MatchFunc

	ms []middleware.Middleware
}

func Server(ms ...middleware.Middleware) *Builder {
	return &Builder{ms: ms}
}

func Client(ms ...middleware.Middleware) *Builder {
	return &Builder{client: true, ms: ms}
}

func (b *Builder) Prefix(prefix ...string) *Builder {
	b.prefix = prefix
	return b
}

// Regex panics on an invalid expression.
func (b *Builder) Regex(regex ...string) *Builder {
	b.regex = make([]*regexp.Regexp, 0, len(regex))
	for _, r := range regex {
		b.regex = append(b.regex, regexp.MustCompile(r))
	}
	return b
}

func (b *Builder) Path(path ...string) *Builder {
	b.path = path
	return b
}

func (b *Builder) Match(fn MatchFunc) *Builder {
	b.match = fn
	return b
}

func (b *Builder) Build() middleware.Middleware {
	var tr transporter = serverTransporter
	if b.client {
		tr = clientTransporter
	}
	return selector(tr, b.selector, b.ms...)
}

func (b *Builder) selector(ctx context.Context, operation string) church.Selector {
	if b.matches(operation) {
		return church.True
	}
	if b.match != nil {
		return b.match(ctx, operation)
	}
	return church.False
}

func (b *Builder) matches(operation string) bool {
	for _, prefix := range b.prefix {
		if strings.HasPrefix(operation, prefix) {
			return true
		}
	}
	for _, r := range b.regex {
		if r.MatchString(operation) {
			return true
		}
	}
	for _, p := range b.path {
		if p == operation {
			return true
		}
	}
	return false
}

type result struct {
	reply any
	err   error
}

func selector(tr transporter, match MatchFunc, ms ...middleware.Middleware) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			info, ok := tr(ctx)
			if !ok {
				return handler(ctx, req)
			}
			res, err := church.Select[result](match(ctx, info.FullMethod()),
				func() result {
					reply, err := middleware.Chain(ms...)(handler)(ctx, req)
					return result{reply: reply, err: err}
				},
				func() result {
					reply, err := handler(ctx, req)
					return result{reply: reply, err: err}
				},
			)
			if err != nil {
				return nil, err
			}
			return res.reply, res.err
		}
	}
}

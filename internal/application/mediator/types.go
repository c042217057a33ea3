package mediator

import (
	"context"
)

// Request is a cmdr or powerplay command/query; its dynamic type selects the handler
type Request interface{}

// Response is whatever the selected handler returns. A handler may return a
// non-nil Response together with an error when part of the work succeeded.
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a function to the handler call shape
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps every Send, e.g. metrics.PrometheusMiddleware
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// chain wraps handler so the first middleware runs outermost
func chain(handler HandlerFunc, middlewares []Middleware) HandlerFunc {
	next := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		middleware := middlewares[i]
		inner := next
		next = func(ctx context.Context, request Request) (Response, error) {
			return middleware(ctx, request, inner)
		}
	}
	return next
}

package mycontext

import (
	"context"
	"net/http"
)

// CtxTraceContext is a context key for the trace label of a request (used by mylog)
type CtxTraceContext struct{}

func ContextFromHTTPRequest(r *http.Request) context.Context {
	trace := r.Header.Get("X-Request-Id")

	return context.WithValue(context.Background(), CtxTraceContext{}, trace)
}

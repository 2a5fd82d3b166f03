package ctxutil

import (
	"context"
)

type ctxKey string

const (
	clientSiteKey ctxKey = "client_site"
	functionKey   ctxKey = "ws_function"
	grantsKey     ctxKey = "ws_grants"
	requestIDKey  ctxKey = "request_id"
)

// WithClientSite stores the authenticated calling site in the context.
func WithClientSite(ctx context.Context, site string) context.Context {
	return context.WithValue(ctx, clientSiteKey, site)
}

// ClientSiteFromCtx extracts the calling site from the context.
// Returns "" and false if the value is missing, empty, or wrong type.
func ClientSiteFromCtx(ctx context.Context) (string, bool) {
	site, ok := ctx.Value(clientSiteKey).(string)
	if !ok || site == "" {
		return "", false
	}
	return site, true
}

// WithFunction stores the web-service function being served in the context.
func WithFunction(ctx context.Context, fn string) context.Context {
	return context.WithValue(ctx, functionKey, fn)
}

// FunctionFromCtx extracts the web-service function name.
// Returns an empty string if absent.
func FunctionFromCtx(ctx context.Context) string {
	fn, _ := ctx.Value(functionKey).(string)
	return fn
}

// WithGrantedFunctions stores the functions the caller's token is limited to.
// An empty list grants every function.
func WithGrantedFunctions(ctx context.Context, fns []string) context.Context {
	return context.WithValue(ctx, grantsKey, fns)
}

// GrantedFunctionsFromCtx extracts the caller's granted functions.
func GrantedFunctionsFromCtx(ctx context.Context) []string {
	fns, _ := ctx.Value(grantsKey).([]string)
	return fns
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

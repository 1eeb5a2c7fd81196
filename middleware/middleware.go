// Package middleware carries the small glue a subgraph HTTP handler needs
// around gqlfed: context plumbing for the registry and a JSON shape for
// surfacing Issues to clients.
package middleware

import (
	"context"

	gqlfed "github.com/gqlfed/gqlfed"
)

// ctxKeyRegistry is a typed context key for storing a *gqlfed.Registry.
type ctxKeyRegistry struct{}

// ContextWithRegistry attaches the registry to the context, making it
// reachable from field resolvers without a package-level variable.
func ContextWithRegistry(ctx context.Context, r *gqlfed.Registry) context.Context {
	return context.WithValue(ctx, ctxKeyRegistry{}, r)
}

// RegistryFromContext retrieves the registry from context.
func RegistryFromContext(ctx context.Context) (*gqlfed.Registry, bool) {
	r, ok := ctx.Value(ctxKeyRegistry{}).(*gqlfed.Registry)
	return r, ok
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues []gqlfed.Issue) map[string]any {
	return map[string]any{"issues": issues}
}

package gqlfed

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"
)

// ResolveReferenceFn turns a partial reference back into a full entity
// instance. ctx and info are pass-through values owned by the execution
// engine; the library never inspects them. The returned value and error are
// handed to the caller unchanged.
type ResolveReferenceFn func(ctx context.Context, ref Reference, info graphql.ResolveInfo) (any, error)

// EntityConfig extends graphql.ObjectConfig with the federation concerns of a
// type: the key fields that identify an instance across subgraphs, and the
// optional resolver invoked when a gateway hands back a reference.
type EntityConfig struct {
	graphql.ObjectConfig

	// KeyFields lists, in declaration order, the fields that together
	// identify an instance. Order is preserved for introspection; the names
	// are not cross-checked against the field map.
	KeyFields []string

	// ResolveReference resolves an instance from a reference. Leave nil for
	// types that are extended here but owned by another subgraph.
	ResolveReference ResolveReferenceFn
}

// Entity decorates a graphql.Object with key-field introspection and
// reference resolution. It satisfies graphql.Type through the embedded object
// and is immutable once built, so it may be shared freely across concurrent
// executions.
type Entity struct {
	*graphql.Object

	keyFields        []string
	resolveReference ResolveReferenceFn
}

// NewEntity builds an entity type. The embedded ObjectConfig is delegated
// verbatim to graphql.NewObject, whose own validation (name, field map) is
// surfaced here instead of being deferred to schema assembly.
func NewEntity(config EntityConfig) (*Entity, error) {
	obj := graphql.NewObject(config.ObjectConfig)
	if err := obj.Error(); err != nil {
		return nil, err
	}
	keys := make([]string, len(config.KeyFields))
	copy(keys, config.KeyFields)
	return &Entity{
		Object:           obj,
		keyFields:        keys,
		resolveReference: config.ResolveReference,
	}, nil
}

// MustEntity is NewEntity panicking on failure, for schema-build-time wiring.
func MustEntity(config EntityConfig) *Entity {
	e, err := NewEntity(config)
	if err != nil {
		panic(err)
	}
	return e
}

// KeyFields returns the declared key fields in declaration order. The result
// is a fresh copy on every call.
func (e *Entity) KeyFields() []string {
	out := make([]string, len(e.keyFields))
	copy(out, e.keyFields)
	return out
}

// HasReferenceResolver reports whether a resolver was configured.
func (e *Entity) HasReferenceResolver() bool { return e.resolveReference != nil }

// ResolveReference resolves an instance from ref. Calling it on an entity
// without a resolver is a configuration error; an absent ref or one without a
// set __typename is an invalid reference. On the happy path the configured
// resolver's result and error propagate unchanged, including errors the
// resolver raises itself.
func (e *Entity) ResolveReference(ctx context.Context, ref Reference, info graphql.ResolveInfo) (any, error) {
	if e.resolveReference == nil {
		return nil, Issues{Issue{
			Path:    "/" + e.Name(),
			Code:    CodeNoResolverConfigured,
			Message: fmt.Sprintf("entity %q has no reference resolver", e.Name()),
		}}
	}
	if iss := CheckReference(ref); iss != nil {
		return nil, iss
	}
	return e.resolveReference(ctx, ref, info)
}

// CheckReference verifies the minimal shape a reference must have before it
// may be delegated to a resolver: present, with a set __typename.
func CheckReference(ref Reference) Issues {
	if !ref.Present() {
		return Issues{Issue{Path: "/", Code: CodeInvalidReference, Message: "reference is absent"}}
	}
	if _, ok := ref.Typename(); !ok {
		return Issues{Issue{
			Path:    "/" + TypenameField,
			Code:    CodeInvalidReference,
			Message: "reference is missing a set __typename",
		}}
	}
	return nil
}

// ResolverFromAny validates a loosely-typed resolver hook, for configuration
// that arrives as dynamic data (plugins, generated wiring). Statically typed
// callers should assign EntityConfig.ResolveReference directly and let the
// compiler do this check. A nil candidate is an explicit "no resolver".
func ResolverFromAny(candidate any) (ResolveReferenceFn, error) {
	switch fn := candidate.(type) {
	case nil:
		return nil, nil
	case ResolveReferenceFn:
		return fn, nil
	case func(ctx context.Context, ref Reference, info graphql.ResolveInfo) (any, error):
		return fn, nil
	}
	return nil, Issues{Issue{
		Path:    "/",
		Code:    CodeInvalidResolverConfig,
		Message: fmt.Sprintf("reference resolver must be callable with (ctx, ref, info), got %T", candidate),
	}}
}

package gqlfed

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/graphql-go/graphql"
)

// Registry holds every entity type a subgraph exposes and dispatches reference
// resolution by __typename. Registration happens at schema-build time; once
// the _Entity union has been built the registry is sealed and further
// registration fails. Reads are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*Entity
	order    []string
	union    *graphql.Union
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: map[string]*Entity{}}
}

// Register adds entities under their object names. Registering two entities
// under one name, or registering after EntityUnion has been built, fails
// without registering any of the arguments.
func (r *Registry) Register(entities ...*Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.union != nil {
		return Issues{Issue{
			Path:    "/",
			Code:    CodeRegistrySealed,
			Message: "registry is sealed once the entity union has been built",
		}}
	}
	var iss Issues
	for _, e := range entities {
		if _, dup := r.entities[e.Name()]; dup {
			iss = AppendIssues(iss, Issue{
				Path:    "/" + e.Name(),
				Code:    CodeDuplicateEntity,
				Message: fmt.Sprintf("entity %q is already registered", e.Name()),
			})
		}
	}
	if iss != nil {
		return iss
	}
	for _, e := range entities {
		r.entities[e.Name()] = e
		r.order = append(r.order, e.Name())
	}
	return nil
}

// Lookup returns the entity registered under name.
func (r *Registry) Lookup(name string) (*Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[name]
	return e, ok
}

// Types returns the registered type names in registration order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// ResolveReference validates ref, picks the entity named by its __typename and
// delegates to that entity's resolver. Resolver results and errors propagate
// unchanged.
func (r *Registry) ResolveReference(ctx context.Context, ref Reference, info graphql.ResolveInfo) (any, error) {
	if iss := CheckReference(ref); iss != nil {
		return nil, iss
	}
	name, _ := ref.Typename()
	e, ok := r.Lookup(name)
	if !ok {
		return nil, Issues{Issue{
			Path:    "/" + TypenameField,
			Code:    CodeUnknownTypename,
			Message: fmt.Sprintf("no entity registered for typename %q", name),
		}}
	}
	return e.ResolveReference(ctx, ref, info)
}

// ResolveRepresentations resolves an ordered batch of already-decoded
// representation values, as received by the _entities field. The result keeps
// input order. The first invalid representation fails the batch with its index
// in the issue path; errors raised by the entity resolvers themselves
// propagate unchanged.
func (r *Registry) ResolveRepresentations(ctx context.Context, representations []any, info graphql.ResolveInfo) ([]any, error) {
	out := make([]any, 0, len(representations))
	for i, rep := range representations {
		ref, err := ReferenceFromValue(rep)
		if err != nil {
			return nil, rebaseIssues("/representations/"+strconv.Itoa(i), err)
		}
		v, err := r.ResolveReference(ctx, ref, info)
		if err != nil {
			if iss, ok := AsIssues(err); ok {
				return nil, rebaseIssues("/representations/"+strconv.Itoa(i), iss)
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// rebaseIssues prefixes issue paths with base, turning per-value paths into
// batch-relative ones.
func rebaseIssues(base string, err error) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = append(out, Issue{Path: p, Code: it.Code, Message: it.Message, Cause: it.Cause})
	}
	return out
}

package gqlfed

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// AnyType is the _Any scalar: opaque representation values exchanged during
// entity resolution. Values pass through untouched; only query-document
// literals need unpacking into plain Go values.
var AnyType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "_Any",
	Description: "Opaque representation values used to resolve entity references.",
	Serialize:   func(value any) any { return value },
	ParseValue:  func(value any) any { return value },
	ParseLiteral: func(valueAST ast.Value) any {
		return anyFromLiteral(valueAST)
	},
})

func anyFromLiteral(v ast.Value) any {
	switch v := v.(type) {
	case *ast.StringValue:
		return v.Value
	case *ast.BooleanValue:
		return v.Value
	case *ast.IntValue:
		if n, err := strconv.Atoi(v.Value); err == nil {
			return n
		}
		return v.Value
	case *ast.FloatValue:
		if f, err := strconv.ParseFloat(v.Value, 64); err == nil {
			return f
		}
		return v.Value
	case *ast.EnumValue:
		return v.Value
	case *ast.ListValue:
		out := make([]any, 0, len(v.Values))
		for _, item := range v.Values {
			out = append(out, anyFromLiteral(item))
		}
		return out
	case *ast.ObjectValue:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Name.Value] = anyFromLiteral(f.Value)
		}
		return out
	}
	return nil
}

// Typenamer lets struct-shaped resolver results declare their concrete entity
// type to the _Entity union. Map-shaped results carry __typename directly.
type Typenamer interface {
	EntityTypename() string
}

// EntityUnion builds the _Entity union over every registered entity, resolving
// the concrete object type from the value's __typename. The union is built
// once and memoized; building it seals the registry.
func (r *Registry) EntityUnion() *graphql.Union {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.union != nil {
		return r.union
	}
	types := make([]*graphql.Object, 0, len(r.order))
	for _, name := range r.order {
		types = append(types, r.entities[name].Object)
	}
	r.union = graphql.NewUnion(graphql.UnionConfig{
		Name:        "_Entity",
		Description: "Union over every entity type this subgraph can resolve.",
		Types:       types,
		ResolveType: r.resolveEntityType,
	})
	return r.union
}

func (r *Registry) resolveEntityType(p graphql.ResolveTypeParams) *graphql.Object {
	var name string
	switch v := p.Value.(type) {
	case map[string]any:
		name, _ = v[TypenameField].(string)
	case Typenamer:
		name = v.EntityTypename()
	}
	if name == "" {
		return nil
	}
	if e, ok := r.Lookup(name); ok {
		return e.Object
	}
	return nil
}

// EntitiesField builds the _entities(representations: [_Any!]!) field a
// gateway queries to re-resolve references in this subgraph. Attach it to the
// query root with AddFieldConfig.
func (r *Registry) EntitiesField() *graphql.Field {
	union := r.EntityUnion()
	return &graphql.Field{
		Type:        graphql.NewNonNull(graphql.NewList(union)),
		Description: "Resolves entity instances from their representations.",
		Args: graphql.FieldConfigArgument{
			"representations": &graphql.ArgumentConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(AnyType))),
			},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			reps, _ := p.Args["representations"].([]any)
			return r.ResolveRepresentations(p.Context, reps, p.Info)
		},
	}
}

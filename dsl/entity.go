package dsl

import (
	"github.com/graphql-go/graphql"

	gqlfed "github.com/gqlfed/gqlfed"
)

type entityBuilder struct {
	name        string
	description string
	keys        []string
	fields      graphql.Fields
	resolve     gqlfed.ResolveReferenceFn
}

type fieldStep struct {
	b    *entityBuilder
	name string
}

// Entity creates a new entity builder for the named object type.
func Entity(name string) *entityBuilder {
	return &entityBuilder{
		name:   name,
		fields: graphql.Fields{},
	}
}

// Key appends key fields in declaration order. Repeated calls accumulate.
func (b *entityBuilder) Key(fields ...string) *entityBuilder {
	b.keys = append(b.keys, fields...)
	return b
}

// Description sets the type description.
func (b *entityBuilder) Description(s string) *entityBuilder {
	b.description = s
	return b
}

// Field registers an output field of the given type.
func (b *entityBuilder) Field(name string, t graphql.Output) *fieldStep {
	b.fields[name] = &graphql.Field{Type: t}
	return &fieldStep{b: b, name: name}
}

// ResolveReference installs the reference resolver.
func (b *entityBuilder) ResolveReference(fn gqlfed.ResolveReferenceFn) *entityBuilder {
	b.resolve = fn
	return b
}

// Build constructs the entity, surfacing configuration errors from the
// underlying object construction.
func (b *entityBuilder) Build() (*gqlfed.Entity, error) {
	return gqlfed.NewEntity(gqlfed.EntityConfig{
		ObjectConfig: graphql.ObjectConfig{
			Name:        b.name,
			Description: b.description,
			Fields:      b.fields,
		},
		KeyFields:        b.keys,
		ResolveReference: b.resolve,
	})
}

// MustBuild is Build panicking on failure.
func (b *entityBuilder) MustBuild() *gqlfed.Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

// Resolve attaches a field resolver to the current field and returns the
// builder for further chaining.
func (f *fieldStep) Resolve(fn graphql.FieldResolveFn) *entityBuilder {
	f.b.fields[f.name].Resolve = fn
	return f.b
}

// Description sets the current field's description and returns the builder.
func (f *fieldStep) Description(s string) *entityBuilder {
	f.b.fields[f.name].Description = s
	return f.b
}

// Deprecated marks the current field deprecated and returns the builder.
func (f *fieldStep) Deprecated(reason string) *entityBuilder {
	f.b.fields[f.name].DeprecationReason = reason
	return f.b
}

func (f *fieldStep) Key(fields ...string) *entityBuilder { return f.b.Key(fields...) }
func (f *fieldStep) Field(name string, t graphql.Output) *fieldStep {
	return f.b.Field(name, t)
}
func (f *fieldStep) ResolveReference(fn gqlfed.ResolveReferenceFn) *entityBuilder {
	return f.b.ResolveReference(fn)
}
func (f *fieldStep) Build() (*gqlfed.Entity, error) { return f.b.Build() }
func (f *fieldStep) MustBuild() *gqlfed.Entity      { return f.b.MustBuild() }

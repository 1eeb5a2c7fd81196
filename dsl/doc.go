// Package dsl provides a fluent builder for gqlfed entity types.
//
// Overview
//   - Builder API: declare an entity with Entity()/Key()/Field()/ResolveReference() then MustBuild()/Build.
//   - Field steps: each Field(...) returns a step that can attach Resolve/Description before chaining on.
//   - Build delegates to gqlfed.NewEntity, so the underlying graphql-go
//     validation (name, field map) surfaces through Build's error.
//
// Example (quickstart)
//
//	user := dsl.Entity("User").
//	    Key("id", "email").
//	    Field("id", graphql.NewNonNull(graphql.ID)).
//	    Field("email", graphql.String).
//	    Field("name", graphql.String).
//	    ResolveReference(resolveUser).
//	    MustBuild()
package dsl

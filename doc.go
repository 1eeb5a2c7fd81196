package gqlfed

// Package gqlfed provides:
//
// - Federation-aware entity types decorating graphql-go object types (EntityConfig/NewEntity)
// - A stable error model via Issues (JSON Pointer, code, message)
// - A Registry dispatching reference resolution by __typename
// - The runtime subgraph surface: the _Any scalar, the _Entity union and the _entities field
// - Representation decoding plus a YAML entity manifest for out-of-process tooling
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, the manifest loader under manifest/, and the CLI under cmd/gqlfed.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := gqlfed.MustEntity(gqlfed.EntityConfig{
//		ObjectConfig:     graphql.ObjectConfig{Name: "User", Fields: fields},
//		KeyFields:        []string{"id"},
//		ResolveReference: resolveUser,
//	})
//
//	reg := gqlfed.NewRegistry()
//	_ = reg.Register(user)
//	query.AddFieldConfig("_entities", reg.EntitiesField())
//

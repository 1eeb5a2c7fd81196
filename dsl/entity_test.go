package dsl_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"

	gqlfed "github.com/gqlfed/gqlfed"
	"github.com/gqlfed/gqlfed/dsl"
)

func TestEntityBuilder_MatchesDirectConstruction(t *testing.T) {
	resolve := func(ctx context.Context, ref gqlfed.Reference, info graphql.ResolveInfo) (any, error) {
		return ref.Fields(), nil
	}

	built := dsl.Entity("User").
		Key("id", "email").
		Field("id", graphql.NewNonNull(graphql.ID)).
		Field("email", graphql.String).
		Field("name", graphql.String).Description("display name").
		ResolveReference(resolve).
		MustBuild()

	direct, err := gqlfed.NewEntity(gqlfed.EntityConfig{
		ObjectConfig: graphql.ObjectConfig{
			Name: "User",
			Fields: graphql.Fields{
				"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
				"email": &graphql.Field{Type: graphql.String},
				"name":  &graphql.Field{Type: graphql.String, Description: "display name"},
			},
		},
		KeyFields:        []string{"id", "email"},
		ResolveReference: resolve,
	})
	if err != nil {
		t.Fatalf("NewEntity: %v", err)
	}

	if built.Name() != direct.Name() {
		t.Fatalf("name mismatch: %q vs %q", built.Name(), direct.Name())
	}
	bk, dk := built.KeyFields(), direct.KeyFields()
	if len(bk) != len(dk) || bk[0] != dk[0] || bk[1] != dk[1] {
		t.Fatalf("key fields mismatch: %v vs %v", bk, dk)
	}
	if !built.HasReferenceResolver() {
		t.Fatalf("builder dropped the reference resolver")
	}
	if _, ok := built.Fields()["name"]; !ok {
		t.Fatalf("builder dropped the name field")
	}
}

func TestEntityBuilder_KeysAccumulate(t *testing.T) {
	e := dsl.Entity("Product").
		Key("sku").
		Field("sku", graphql.String).Key("region").
		MustBuild()
	got := e.KeyFields()
	if len(got) != 2 || got[0] != "sku" || got[1] != "region" {
		t.Fatalf("expected [sku region], got %v", got)
	}
}

func TestEntityBuilder_BuildSurfacesObjectErrors(t *testing.T) {
	if _, err := dsl.Entity("").Field("id", graphql.ID).Build(); err == nil {
		t.Fatalf("expected object validation error for empty name")
	}
}

func TestEntityBuilder_NoResolverByDefault(t *testing.T) {
	e := dsl.Entity("Review").Field("id", graphql.ID).MustBuild()
	if e.HasReferenceResolver() {
		t.Fatalf("resolver must be absent unless installed")
	}
}

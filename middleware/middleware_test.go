package middleware_test

import (
	"context"
	"testing"

	gqlfed "github.com/gqlfed/gqlfed"
	"github.com/gqlfed/gqlfed/middleware"
)

func TestRegistryContextRoundTrip(t *testing.T) {
	reg := gqlfed.NewRegistry()
	ctx := middleware.ContextWithRegistry(context.Background(), reg)
	got, ok := middleware.RegistryFromContext(ctx)
	if !ok || got != reg {
		t.Fatalf("expected the registry back, got %v (%v)", got, ok)
	}
	if _, ok := middleware.RegistryFromContext(context.Background()); ok {
		t.Fatalf("bare context carries no registry")
	}
}

func TestErrorPayload(t *testing.T) {
	payload := middleware.ErrorPayload([]gqlfed.Issue{
		{Path: "/__typename", Code: gqlfed.CodeInvalidReference, Message: "missing"},
	})
	issues, ok := payload["issues"].([]gqlfed.Issue)
	if !ok || len(issues) != 1 {
		t.Fatalf("unexpected payload shape: %#v", payload)
	}
}

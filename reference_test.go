package gqlfed_test

import (
	"testing"

	gqlfed "github.com/gqlfed/gqlfed"
)

func TestReference_ZeroValueIsAbsent(t *testing.T) {
	var ref gqlfed.Reference
	if ref.Present() {
		t.Fatalf("zero value must be absent")
	}
	if _, ok := ref.Typename(); ok {
		t.Fatalf("absent reference has no typename")
	}
	if _, ok := ref.Get("id"); ok {
		t.Fatalf("absent reference has no fields")
	}
}

func TestReference_NilMapIsAbsent(t *testing.T) {
	if gqlfed.NewReference(nil).Present() {
		t.Fatalf("nil map must map to the absent reference")
	}
}

func TestReference_PresentEmptyIsNotAbsent(t *testing.T) {
	ref := gqlfed.NewReference(map[string]any{})
	if !ref.Present() {
		t.Fatalf("a present empty reference is distinct from absent")
	}
	if ref.Len() != 0 {
		t.Fatalf("expected no fields, got %d", ref.Len())
	}
}

func TestReference_Typename(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   string
		ok     bool
	}{
		{"set", map[string]any{"__typename": "User"}, "User", true},
		{"missing", map[string]any{"id": "1"}, "", false},
		{"nil value", map[string]any{"__typename": nil}, "", false},
		{"empty string", map[string]any{"__typename": ""}, "", false},
		{"wrong kind", map[string]any{"__typename": 7}, "", false},
	}
	for _, tc := range cases {
		got, ok := gqlfed.NewReference(tc.fields).Typename()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestReference_KeyValues(t *testing.T) {
	ref := gqlfed.NewReference(map[string]any{
		"__typename": "User",
		"id":         "1",
		"email":      "ada@example.com",
	})
	got := ref.KeyValues([]string{"id", "email", "missing"})
	if len(got) != 2 || got["id"] != "1" || got["email"] != "ada@example.com" {
		t.Fatalf("unexpected key values: %#v", got)
	}
}

package gqlfed_test

import (
	"fmt"
	"strings"
	"testing"

	gqlfed "github.com/gqlfed/gqlfed"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := gqlfed.Issues{
		{Path: "/a", Code: gqlfed.CodeInvalidReference},
		{Path: "/b", Code: gqlfed.CodeUnknownTypename},
		{Path: "/c", Code: gqlfed.CodeInvalidRepresentation},
		{Path: "/d", Code: gqlfed.CodeDuplicateEntity},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected truncation marker in %q", s)
	}
	if (gqlfed.Issues{}).Error() != "" {
		t.Fatalf("empty issues render empty")
	}
}

func TestAsIssues_UnwrapsWrappedErrors(t *testing.T) {
	inner := gqlfed.Issues{{Path: "/", Code: gqlfed.CodeInvalidReference}}
	wrapped := fmt.Errorf("resolving: %w", inner)
	iss, ok := gqlfed.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Code != gqlfed.CodeInvalidReference {
		t.Fatalf("expected unwrapped issues, got %v (%v)", iss, ok)
	}
	if _, ok := gqlfed.AsIssues(nil); ok {
		t.Fatalf("nil error carries no issues")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	iss := gqlfed.AppendIssues(nil, gqlfed.Issue{Path: "/", Code: gqlfed.CodeInvalidReference})
	if len(iss) != 1 {
		t.Fatalf("expected one issue, got %d", len(iss))
	}
}

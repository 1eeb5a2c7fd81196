package gqlfed

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// ReferenceFromValue converts one already-decoded representation value into a
// Reference. The value must be a non-nil object carrying a set __typename;
// anything else is rejected before a resolver ever sees it, because without
// the discriminator there is nothing to dispatch on.
func ReferenceFromValue(v any) (Reference, error) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return Reference{}, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidRepresentation,
			Message: fmt.Sprintf("representation must be an object, got %T", v),
		}}
	}
	ref := NewReference(m)
	if iss := CheckReference(ref); iss != nil {
		return Reference{}, iss
	}
	return ref, nil
}

// DecodeRepresentations parses a JSON array of representation objects, the
// wire shape of the _entities representations argument. Element issues carry
// the element index in their path.
func DecodeRepresentations(data []byte) ([]Reference, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidRepresentation,
			Message: "representations are not valid JSON",
			Cause:   err,
		}}
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidRepresentation,
			Message: fmt.Sprintf("representations must be a JSON array, got %T", raw),
		}}
	}
	out := make([]Reference, 0, len(arr))
	for i, v := range arr {
		ref, err := ReferenceFromValue(v)
		if err != nil {
			return nil, rebaseIssues("/"+strconv.Itoa(i), err)
		}
		out = append(out, ref)
	}
	return out, nil
}

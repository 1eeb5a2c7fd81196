package gqlfed

// TypenameField is the discriminator key every representation carries to name
// the concrete type it should be resolved as.
const TypenameField = "__typename"

// Reference is a partial representation of an entity instance: the type
// discriminator plus some or all of the declared key fields. The zero value is
// the absent reference, which stands in for a null representation. A present
// reference with no fields is distinct from an absent one.
type Reference struct {
	fields  map[string]any
	present bool
}

// NewReference wraps an already-decoded representation map. A nil map yields
// the absent reference.
func NewReference(fields map[string]any) Reference {
	if fields == nil {
		return Reference{}
	}
	return Reference{fields: fields, present: true}
}

// Present reports whether the reference carries a representation at all.
func (r Reference) Present() bool { return r.present }

// Typename returns the type discriminator. ok is false when the reference is
// absent or when __typename is missing, unset, or not a non-empty string.
func (r Reference) Typename() (string, bool) {
	if !r.present {
		return "", false
	}
	s, ok := r.fields[TypenameField].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Get looks up a single field value on the present variant.
func (r Reference) Get(name string) (any, bool) {
	if !r.present {
		return nil, false
	}
	v, ok := r.fields[name]
	return v, ok
}

// Len returns the number of fields carried, including __typename.
func (r Reference) Len() int { return len(r.fields) }

// Fields exposes the underlying representation map. Callers must treat it as
// read-only; mutating it would break the descriptor's immutability contract.
func (r Reference) Fields() map[string]any { return r.fields }

// KeyValues extracts the subset of fields named by keys, skipping ones the
// reference does not carry. Convenient inside resolvers that forward key
// values to a lookup.
func (r Reference) KeyValues(keys []string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := r.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

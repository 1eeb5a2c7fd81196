// Package manifest loads YAML declarations of a subgraph's entity types: the
// type names and the key fields that identify their instances. The manifest is
// the out-of-process mirror of what a running schema registers in a
// gqlfed.Registry, and backs the gqlfed CLI.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	gqlfed "github.com/gqlfed/gqlfed"
)

// Entity declares one entity type.
type Entity struct {
	Name        string   `yaml:"name"`
	Keys        []string `yaml:"keys"`
	Description string   `yaml:"description,omitempty"`
}

// Manifest is an ordered list of entity declarations.
type Manifest struct {
	Entities []Entity `yaml:"entities"`
}

// Load decodes a manifest from r. Every entity needs a non-empty name and
// names must be unique; key fields are not cross-checked against any field map.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	var iss gqlfed.Issues
	seen := map[string]struct{}{}
	for i, e := range m.Entities {
		if e.Name == "" {
			iss = gqlfed.AppendIssues(iss, gqlfed.Issue{
				Path:    fmt.Sprintf("/entities/%d/name", i),
				Code:    gqlfed.CodeInvalidManifest,
				Message: "entity name must not be empty",
			})
			continue
		}
		if _, dup := seen[e.Name]; dup {
			iss = gqlfed.AppendIssues(iss, gqlfed.Issue{
				Path:    fmt.Sprintf("/entities/%d/name", i),
				Code:    gqlfed.CodeDuplicateEntity,
				Message: fmt.Sprintf("entity %q declared twice", e.Name),
			})
		}
		seen[e.Name] = struct{}{}
	}
	if iss != nil {
		return nil, iss
	}
	return &m, nil
}

// LoadFile reads and decodes a manifest from path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Entity returns the declaration for the named type.
func (m *Manifest) Entity(name string) (Entity, bool) {
	for _, e := range m.Entities {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Names returns declared type names in declaration order.
func (m *Manifest) Names() []string {
	out := make([]string, 0, len(m.Entities))
	for _, e := range m.Entities {
		out = append(out, e.Name)
	}
	return out
}

// CheckReference verifies a reference against the manifest: its __typename
// must be declared and every declared key field must be carried with a
// non-nil value. Shape errors from gqlfed.CheckReference surface first.
func (m *Manifest) CheckReference(ref gqlfed.Reference) gqlfed.Issues {
	if iss := gqlfed.CheckReference(ref); iss != nil {
		return iss
	}
	name, _ := ref.Typename()
	decl, ok := m.Entity(name)
	if !ok {
		return gqlfed.Issues{gqlfed.Issue{
			Path:    "/" + gqlfed.TypenameField,
			Code:    gqlfed.CodeUnknownTypename,
			Message: fmt.Sprintf("typename %q is not declared in the manifest", name),
		}}
	}
	var iss gqlfed.Issues
	for _, k := range decl.Keys {
		v, ok := ref.Get(k)
		if !ok || v == nil {
			iss = gqlfed.AppendIssues(iss, gqlfed.Issue{
				Path:    "/" + k,
				Code:    gqlfed.CodeInvalidReference,
				Message: fmt.Sprintf("key field %q of %q is not set", k, name),
			})
		}
	}
	return iss
}

// Package config implements the ConfigNamespace/ConfigProxy lazy-lookup DSL
// shared by every format's pipe network: pipes declare the constant they
// need once, at construction time, as a path into whichever ConfigNamespace
// the owning strategy injects, without committing to a concrete value until
// a pipe instance actually evaluates it.
package config

import (
	"fmt"

	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Namespace is a plain value object holding a format's constant vocabulary
// — tag names, attribute keys, enum mappings — as nested maps. It is built
// once per format at strategy-registration time and never mutated
// afterward.
type Namespace struct {
	values map[string]any
}

// NewNamespace wraps values as a Namespace. values is typically a literal
// nested map built inline by the owning strategy package.
func NewNamespace(values map[string]any) *Namespace {
	return &Namespace{values: values}
}

// Get navigates path through the namespace's nested maps, returning a
// ConfigurationError — a programmer error, never a data error — if any
// segment is absent or the value at an intermediate segment is not itself a
// nested map.
func (n *Namespace) Get(path ...string) (any, error) {
	if n == nil {
		return nil, umlerrors.NewConfigurationError(joinPath(path), "namespace is nil")
	}
	var cur any = n.values
	for i, segment := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, umlerrors.NewConfigurationError(joinPath(path), fmt.Sprintf("segment %q is not a namespace at %s", segment, joinPath(path[:i])))
		}
		v, ok := m[segment]
		if !ok {
			return nil, umlerrors.NewConfigurationError(joinPath(path), fmt.Sprintf("key %q not present in namespace", segment))
		}
		cur = v
	}
	return cur, nil
}

func joinPath(path []string) string {
	out := ""
	for i, s := range path {
		if i > 0 {
			out += "."
		}
		out += s
	}
	return out
}

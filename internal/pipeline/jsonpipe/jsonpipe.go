// Package jsonpipe implements the JSON pipe specialization described by the
// system's component design: pipes match decoded map[string]any nodes by a
// discriminator key (StarUML's "_type") and a set of attribute conditions,
// with a flattenReference helper for the {"$ref": "id"} idiom JSON-based UML
// dialects use in place of XML's idref attributes.
package jsonpipe

import (
	"encoding/json"
	"fmt"

	"github.com/umltranslator/translator-go/internal/pipeline"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Node is one decoded JSON object in the tree a Strategy's parse step
// produces from raw bytes. Keys match encoding/json's own unmarshal-into-any
// shape (map[string]any, []any, plain scalars) with no extra wrapping, since
// unlike XML no namespace disambiguation is needed.
type Node = map[string]any

// Parse decodes raw bytes into the root Node of the document.
func Parse(data []byte) (Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, umlerrors.NewParseError("", 0, err)
	}
	return root, nil
}

// Walk calls fn for node and, recursively, for every Node reachable through
// its values — map values directly, and map values nested inside slices
// (StarUML's "ownedElements" arrays) — depth-first. A nested {"$ref": id}
// map is a reference, not an element, and is not visited. Slice items are
// visited in slice order; the keys of one map are visited in no defined order.
func Walk(node Node, fn func(Node)) {
	fn(node)
	for _, v := range node {
		walkValue(v, fn)
	}
}

func walkValue(v any, fn func(Node)) {
	switch t := v.(type) {
	case Node:
		if _, isRef := FlattenReference(t); isRef {
			return
		}
		Walk(t, fn)
	case []any:
		for _, item := range t {
			walkValue(item, fn)
		}
	}
}

// AttributeCondition is evaluated against a Node's keys/values during
// CanProcess. ExpectedValue is ignored (any value at Key satisfies the
// condition) when it is nil and RaiseIfMissing is false.
type AttributeCondition struct {
	Key            string
	ExpectedValue  any
	RaiseIfMissing bool
}

func (c AttributeCondition) evaluate(node Node) (bool, error) {
	v, ok := node[c.Key]
	if !ok {
		if c.RaiseIfMissing {
			return false, umlerrors.NewInvalidFormatError("json", c.Key, "missing mandatory key "+c.Key, nil)
		}
		return false, nil
	}
	if c.ExpectedValue != nil && v != c.ExpectedValue {
		return false, nil
	}
	return true, nil
}

// Pipe carries the discriminator-matching and attribute-condition logic
// shared by every JSON pipe; concrete pipe types embed it and supply their
// own Process, using AttributesFor/MapValueFromKey/FlattenReference to turn
// the matched Node into Builder construct_xxx calls.
type Pipe struct {
	pipeline.Base
	// DiscriminatorKey names the field CanProcess reads to classify a
	// node — "_type" for StarUML MDJ. Empty matches any node.
	DiscriminatorKey string
	// DiscriminatorValue is the expected value at DiscriminatorKey, or ""
	// to match any value (key presence only).
	DiscriminatorValue string
	Conditions         []AttributeCondition
}

// CanProcess implements the default JSON pipe predicate: the batch's Data
// must be a Node whose DiscriminatorKey matches DiscriminatorValue (when
// both are set) and every registered AttributeCondition holds. As with its
// XML counterpart, a condition that raises on a missing key is treated as
// "does not match" here; use CanProcessErr to observe the structural error.
func (p *Pipe) CanProcess(batch pipeline.DataBatch) bool {
	ok, _ := p.CanProcessErr(batch)
	return ok
}

// CanProcessErr is CanProcess plus the structural error a RaiseIfMissing
// condition produces.
func (p *Pipe) CanProcessErr(batch pipeline.DataBatch) (bool, error) {
	node, ok := batch.Data.(Node)
	if !ok {
		return false, nil
	}
	if p.DiscriminatorKey != "" {
		v, present := node[p.DiscriminatorKey]
		if !present {
			return false, nil
		}
		if p.DiscriminatorValue != "" && fmt.Sprint(v) != p.DiscriminatorValue {
			return false, nil
		}
	}
	for _, cond := range p.Conditions {
		matched, err := cond.evaluate(node)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// AttributesFor extracts a {alias -> value} mapping from node's keys.
// mandatory and optional are alias->key bindings; a mandatory key absent
// from node raises an InvalidFormatError naming the discriminator.
func AttributesFor(node Node, mandatory, optional map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(mandatory)+len(optional))
	for alias, key := range mandatory {
		v, ok := node[key]
		if !ok {
			return nil, umlerrors.NewInvalidFormatError("json", key, "missing mandatory key "+key, nil)
		}
		out[alias] = v
	}
	for alias, key := range optional {
		if v, ok := node[key]; ok {
			out[alias] = v
		}
	}
	return out, nil
}

// MapValueFromKey rewrites bag[key] by looking its stringified form up in
// table. When the current value is absent from table: raiseIfMissing true
// raises an InvalidFormatError; false drops the key from bag.
func MapValueFromKey(bag map[string]any, key string, table map[string]string, raiseIfMissing bool) error {
	v, ok := bag[key]
	if !ok {
		return nil
	}
	mapped, ok := table[fmt.Sprint(v)]
	if !ok {
		if raiseIfMissing {
			return umlerrors.NewInvalidFormatError("json", key, fmt.Sprintf("unmappable value %v", v), nil)
		}
		delete(bag, key)
		return nil
	}
	bag[key] = mapped
	return nil
}

// FlattenReference resolves the {"$ref": "id"} idiom: if v is a map holding
// exactly a "$ref" string key, FlattenReference returns that id and true.
// Any other shape returns ("", false) unchanged, letting the caller fall
// back to treating v as a plain scalar.
func FlattenReference(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	ref, ok := m["$ref"]
	if !ok {
		return "", false
	}
	id, ok := ref.(string)
	if !ok {
		return "", false
	}
	return id, true
}

package xmlpipe

import (
	"github.com/umltranslator/translator-go/internal/pipeline"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// AttributeCondition is evaluated against an Element's attributes during
// CanProcess. ExpectedValue is ignored (any value at Key satisfies the
// condition) when it is the empty string and RaiseIfMissing is false —
// callers that only care that a key is present, not its value, pass "".
type AttributeCondition struct {
	Key            string
	ExpectedValue  string
	RaiseIfMissing bool
}

func (c AttributeCondition) evaluate(el *Element) (bool, error) {
	v, ok := el.Attr(c.Key)
	if !ok {
		if c.RaiseIfMissing {
			return false, umlerrors.NewInvalidFormatError("xml", el.QualifiedName(), "missing mandatory attribute "+c.Key, nil)
		}
		return false, nil
	}
	if c.ExpectedValue != "" && v != c.ExpectedValue {
		return false, nil
	}
	return true, nil
}

// Pipe carries the tag-matching and attribute-condition logic shared by
// every XML pipe; concrete pipe types embed it and supply their own
// Process, using AttributesFor/MapValueFromKey to turn the matched Element
// into Builder construct_xxx calls.
type Pipe struct {
	pipeline.Base
	// AssociatedTag is the expected fully-qualified tag name, or "" to
	// match any tag.
	AssociatedTag string
	Conditions    []AttributeCondition
}

// CanProcess implements the default XML pipe predicate: the batch's Data
// must be an *Element whose QualifiedName matches AssociatedTag (when set)
// and every registered AttributeCondition holds. A condition that raises
// on a missing attribute is surfaced by calling CanProcessErr instead; a
// plain CanProcess, per the Pipe interface's pure-predicate contract,
// treats a raising condition as "does not match" rather than propagating
// the error — pipes that need the structural error should check
// CanProcessErr explicitly before dispatch.
func (p *Pipe) CanProcess(batch pipeline.DataBatch) bool {
	ok, _ := p.CanProcessErr(batch)
	return ok
}

// CanProcessErr is CanProcess plus the structural error a RaiseIfMissing
// condition produces, for callers that must distinguish "didn't match"
// from "matched but malformed".
func (p *Pipe) CanProcessErr(batch pipeline.DataBatch) (bool, error) {
	el, ok := batch.Data.(*Element)
	if !ok {
		return false, nil
	}
	if p.AssociatedTag != "" && el.QualifiedName() != p.AssociatedTag {
		return false, nil
	}
	for _, cond := range p.Conditions {
		matched, err := cond.evaluate(el)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// AttributesFor extracts a {alias -> value} mapping from el's attributes.
// mandatory and optional are alias->attributeKey bindings; a mandatory key
// absent from el raises an InvalidFormatError naming el's tag.
func AttributesFor(el *Element, mandatory, optional map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(mandatory)+len(optional))
	for alias, key := range mandatory {
		v, ok := el.Attr(key)
		if !ok {
			return nil, umlerrors.NewInvalidFormatError("xml", el.QualifiedName(), "missing mandatory attribute "+key, nil)
		}
		out[alias] = v
	}
	for alias, key := range optional {
		if v, ok := el.Attr(key); ok {
			out[alias] = v
		}
	}
	return out, nil
}

// MapValueFromKey rewrites bag[key] by looking it up in table. When the
// current value is absent from table: raiseIfMissing true raises an
// InvalidFormatError; false drops the key from bag, leaving any downstream
// default to apply.
func MapValueFromKey(bag map[string]string, key string, table map[string]string, raiseIfMissing bool) error {
	v, ok := bag[key]
	if !ok {
		return nil
	}
	mapped, ok := table[v]
	if !ok {
		if raiseIfMissing {
			return umlerrors.NewInvalidFormatError("xml", key, "unmappable value "+v, nil)
		}
		delete(bag, key)
		return nil
	}
	bag[key] = mapped
	return nil
}

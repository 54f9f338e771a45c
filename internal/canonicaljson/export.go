// Package canonicaljson renders a canonical Model into the JSON shape the
// external interface describes: one list per entity kind, each entry carrying
// its own id, with every cross-entity reference expressed as {"idref": id} rather than
// a nested copy. This is the CLI-facing serializer, not part of the core
// deserialization pipeline — translator-go's job ends at producing a Model;
// writing it back out is this package's concern alone.
package canonicaljson

import "github.com/umltranslator/translator-go/internal/model"

func idref(e model.Element) map[string]any {
	if e == nil {
		return nil
	}
	return map[string]any{"idref": e.ID()}
}

func idrefOrNil(e model.Element) any {
	if e == nil {
		return nil
	}
	return idref(e)
}

func named(n model.NamedElementFields) map[string]any {
	return map[string]any{
		"name":       n.Name,
		"visibility": string(n.Visibility),
	}
}

func exportAttribute(a *model.Attribute) map[string]any {
	out := named(a.NamedElementFields)
	out["id"] = a.ID()
	out["type"] = "attribute"
	out["typeRef"] = idrefOrNil(a.Type)
	out["static"] = a.Static
	out["ordered"] = a.Ordered
	out["unique"] = a.Unique
	out["readOnly"] = a.ReadOnly
	out["query"] = a.Query
	out["derived"] = a.Derived
	out["derivedUnion"] = a.DerivedUnion
	return out
}

func exportParameter(p *model.Parameter) map[string]any {
	out := named(p.NamedElementFields)
	out["id"] = p.ID()
	out["type"] = "parameter"
	out["typeRef"] = idrefOrNil(p.Type)
	out["direction"] = string(p.Direction)
	return out
}

func exportOperation(o *model.Operation) map[string]any {
	out := named(o.NamedElementFields)
	out["id"] = o.ID()
	out["type"] = "operation"
	params := make([]map[string]any, 0, len(o.Parameters))
	for _, p := range o.Parameters {
		params = append(params, exportParameter(p))
	}
	out["parameters"] = params
	out["returnTypeRef"] = idrefOrNil(o.ReturnType)
	out["isAbstract"] = o.IsAbstract
	out["exceptions"] = o.Exceptions
	out["static"] = o.Static
	out["ordered"] = o.Ordered
	out["unique"] = o.Unique
	out["query"] = o.Query
	out["derived"] = o.Derived
	out["derivedUnion"] = o.DerivedUnion
	return out
}

func exportClassifierFields(c model.ClassifierFields) (attrs, ops []map[string]any) {
	for _, a := range c.Attributes {
		attrs = append(attrs, exportAttribute(a))
	}
	for _, o := range c.Operations {
		ops = append(ops, exportOperation(o))
	}
	return attrs, ops
}

func exportClass(c *model.Class) map[string]any {
	out := named(c.NamedElementFields)
	out["id"] = c.ID()
	out["type"] = "class"
	attrs, ops := exportClassifierFields(c.ClassifierFields)
	out["attributes"] = attrs
	out["operations"] = ops
	gens := make([]map[string]any, 0, len(c.Generalizations))
	for _, g := range c.Generalizations {
		gens = append(gens, idref(g))
	}
	out["generalizations"] = gens
	reals := make([]map[string]any, 0, len(c.Realizations))
	for _, r := range c.Realizations {
		reals = append(reals, idref(r))
	}
	out["realizations"] = reals
	return out
}

func exportInterface(i *model.Interface) map[string]any {
	out := named(i.NamedElementFields)
	out["id"] = i.ID()
	out["type"] = "interface"
	attrs, ops := exportClassifierFields(i.ClassifierFields)
	out["attributes"] = attrs
	out["operations"] = ops
	return out
}

func exportDataType(d *model.DataType) map[string]any {
	out := named(d.NamedElementFields)
	out["id"] = d.ID()
	out["type"] = "datatype"
	attrs, ops := exportClassifierFields(d.ClassifierFields)
	out["attributes"] = attrs
	out["operations"] = ops
	return out
}

func exportEnumeration(e *model.Enumeration) map[string]any {
	out := named(e.NamedElementFields)
	out["id"] = e.ID()
	out["type"] = "enumeration"
	out["literals"] = e.Literals
	return out
}

func exportPrimitiveType(p *model.PrimitiveType) map[string]any {
	return map[string]any{
		"id":   p.ID(),
		"type": "primitive",
		"name": p.Name,
		"kind": string(p.Kind),
	}
}

func exportEnd(e *model.AssociationEnd) map[string]any {
	return map[string]any{
		"elementRef":   idrefOrNil(e.Element),
		"role":         e.Role,
		"multiplicity": string(e.Multiplicity),
		"navigable":    e.Navigability,
	}
}

func exportAssociationLike(kind string, id, name string, a *model.AssociationEnd, b *model.AssociationEnd) map[string]any {
	return map[string]any{
		"id":   id,
		"type": kind,
		"name": name,
		"end1": exportEnd(a),
		"end2": exportEnd(b),
	}
}

func exportGeneralization(g *model.Generalization) map[string]any {
	return map[string]any{
		"id":          g.ID(),
		"type":        "generalization",
		"specificRef": idrefOrNil(g.Specific),
		"generalRef":  idrefOrNil(g.General),
	}
}

func exportDependency(kind string, d model.Dependency) map[string]any {
	return map[string]any{
		"id":          d.ID(),
		"type":        kind,
		"clientRef":   idrefOrNil(d.Client),
		"supplierRef": idrefOrNil(d.Supplier),
	}
}

func exportLifeline(l *model.Lifeline) map[string]any {
	out := named(l.NamedElementFields)
	out["id"] = l.ID()
	out["type"] = "lifeline"
	out["representsRef"] = idrefOrNil(l.Represents)
	return out
}

func exportMessage(m *model.Message) map[string]any {
	return map[string]any{
		"id":              m.ID(),
		"type":            "message",
		"name":            m.Name,
		"sendEventRef":    idrefOrNil(m.SendEvent),
		"receiveEventRef": idrefOrNil(m.ReceiveEvent),
		"signatureRef":    idrefOrNil(m.Signature),
		"arguments":       m.Arguments,
		"sort":            string(m.Sort),
		"kind":            string(m.Kind),
	}
}

func exportFragment(f model.Fragment) map[string]any {
	switch v := f.(type) {
	case *model.OccurrenceSpecification:
		return map[string]any{
			"id":         v.ID(),
			"type":       "occurrence",
			"coveredRef": idrefOrNil(v.Covered),
		}
	case *model.CombinedFragment:
		covered := make([]map[string]any, 0, len(v.Covered))
		for _, l := range v.Covered {
			covered = append(covered, idref(l))
		}
		operands := make([]map[string]any, 0, len(v.Operands))
		for _, op := range v.Operands {
			fragments := make([]map[string]any, 0, len(op.Fragments))
			for _, nested := range op.Fragments {
				fragments = append(fragments, exportFragment(nested))
			}
			operands = append(operands, map[string]any{
				"id":        op.ID(),
				"guard":     op.Guard,
				"fragments": fragments,
			})
		}
		return map[string]any{
			"id":          v.ID(),
			"type":        "combinedFragment",
			"operator":    string(v.Operator),
			"coveredRefs": covered,
			"operands":    operands,
		}
	case *model.InteractionUse:
		covered := make([]map[string]any, 0, len(v.Covered))
		for _, l := range v.Covered {
			covered = append(covered, idref(l))
		}
		return map[string]any{
			"id":             v.ID(),
			"type":           "interactionUse",
			"interactionRef": idrefOrNil(v.Interaction),
			"coveredRefs":    covered,
		}
	default:
		return map[string]any{"id": f.ID()}
	}
}

func exportInteraction(i *model.Interaction) map[string]any {
	out := named(i.NamedElementFields)
	out["id"] = i.ID()
	out["type"] = "interaction"
	lifelines := make([]map[string]any, 0, len(i.Lifelines))
	for _, l := range i.Lifelines {
		lifelines = append(lifelines, exportLifeline(l))
	}
	out["lifelines"] = lifelines
	messages := make([]map[string]any, 0, len(i.Messages))
	for _, m := range i.Messages {
		messages = append(messages, exportMessage(m))
	}
	out["messages"] = messages
	fragments := make([]map[string]any, 0, len(i.Fragments))
	for _, f := range i.Fragments {
		fragments = append(fragments, exportFragment(f))
	}
	out["fragments"] = fragments
	return out
}

func exportPackage(p *model.Package) map[string]any {
	out := named(p.NamedElementFields)
	out["id"] = p.ID()
	out["type"] = "package"
	ids := make([]string, 0, len(p.Elements))
	for _, e := range p.Elements {
		ids = append(ids, e.ID())
	}
	out["elementIDs"] = ids
	return out
}

// Export renders m into the canonical JSON-ready document: a
// map[string]any suitable for encoding/json.Marshal, with every
// cross-entity reference expressed as {"idref": id}.
func Export(m *model.Model) map[string]any {
	classes := make([]map[string]any, 0, len(m.Elements.Classes))
	for _, c := range m.Elements.Classes {
		classes = append(classes, exportClass(c))
	}
	interfaces := make([]map[string]any, 0, len(m.Elements.Interfaces))
	for _, i := range m.Elements.Interfaces {
		interfaces = append(interfaces, exportInterface(i))
	}
	dataTypes := make([]map[string]any, 0, len(m.Elements.DataTypes))
	for _, d := range m.Elements.DataTypes {
		dataTypes = append(dataTypes, exportDataType(d))
	}
	enums := make([]map[string]any, 0, len(m.Elements.Enumerations))
	for _, e := range m.Elements.Enumerations {
		enums = append(enums, exportEnumeration(e))
	}
	primitives := make([]map[string]any, 0, len(m.Elements.PrimitiveTypes))
	for _, p := range m.Elements.PrimitiveTypes {
		primitives = append(primitives, exportPrimitiveType(p))
	}
	associations := make([]map[string]any, 0, len(m.Elements.Associations))
	for _, a := range m.Elements.Associations {
		end1, end2 := a.Ends()
		switch v := a.(type) {
		case *model.Association:
			associations = append(associations, exportAssociationLike("association", v.ID(), v.Name, end1, end2))
		case *model.Composition:
			associations = append(associations, exportAssociationLike("composition", v.ID(), v.Name, end1, end2))
		case *model.Aggregation:
			associations = append(associations, exportAssociationLike("aggregation", v.ID(), v.Name, end1, end2))
		case *model.DirectedAssociation:
			associations = append(associations, exportAssociationLike("directedAssociation", v.ID(), v.Name, end1, end2))
		}
	}
	generalizations := make([]map[string]any, 0, len(m.Elements.Generalizations))
	for _, g := range m.Elements.Generalizations {
		generalizations = append(generalizations, exportGeneralization(g))
	}
	dependencies := make([]map[string]any, 0, len(m.Elements.Dependencies))
	for _, d := range m.Elements.Dependencies {
		dependencies = append(dependencies, exportDependency("dependency", *d))
	}
	realizations := make([]map[string]any, 0, len(m.Elements.Realizations))
	for _, r := range m.Elements.Realizations {
		realizations = append(realizations, exportDependency("realization", r.Dependency))
	}
	interactions := make([]map[string]any, 0, len(m.Elements.Interactions))
	for _, i := range m.Elements.Interactions {
		interactions = append(interactions, exportInteraction(i))
	}
	packages := make([]map[string]any, 0, len(m.Elements.Packages))
	for _, p := range m.Elements.Packages {
		packages = append(packages, exportPackage(p))
	}

	classDiagrams := make([]map[string]any, 0, len(m.Diagrams.ClassDiagrams))
	for _, d := range m.Diagrams.ClassDiagrams {
		classDiagrams = append(classDiagrams, map[string]any{
			"id":         d.ID(),
			"name":       d.Name,
			"elementIDs": d.Elements.ElementIDs,
		})
	}
	sequenceDiagrams := make([]map[string]any, 0, len(m.Diagrams.SequenceDiagrams))
	for _, d := range m.Diagrams.SequenceDiagrams {
		sequenceDiagrams = append(sequenceDiagrams, map[string]any{
			"id":         d.ID(),
			"name":       d.Name,
			"elementIDs": d.Elements.ElementIDs,
		})
	}

	return map[string]any{
		"id":   m.ID(),
		"name": m.Name,
		"elements": map[string]any{
			"classes":         classes,
			"interfaces":      interfaces,
			"dataTypes":       dataTypes,
			"enumerations":    enums,
			"primitiveTypes":  primitives,
			"associations":    associations,
			"generalizations": generalizations,
			"dependencies":    dependencies,
			"realizations":    realizations,
			"interactions":    interactions,
			"packages":        packages,
		},
		"diagrams": map[string]any{
			"classDiagrams":    classDiagrams,
			"sequenceDiagrams": sequenceDiagrams,
		},
	}
}

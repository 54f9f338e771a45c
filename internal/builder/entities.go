package builder

import "github.com/umltranslator/translator-go/internal/model"

// AssociationEndParams describes one end of an Association or
// DirectedAssociation at construction time. ElementID may resolve to any
// Classifier; it is left null until the referenced entity registers if it
// has not yet been constructed.
type AssociationEndParams struct {
	ElementID    string
	Role         string
	Multiplicity model.Multiplicity
	Navigability bool
}

func (b *Builder) buildEnd(p AssociationEndParams) *model.AssociationEnd {
	mult := p.Multiplicity
	if mult == "" {
		mult = model.DefaultMultiplicity
	}
	end := &model.AssociationEnd{Role: p.Role, Multiplicity: mult, Navigability: p.Navigability}
	b.resolveOrDefer(p.ElementID, func(e model.Element) { end.Element = e })
	return end
}

// ConstructPrimitiveType registers a PrimitiveType. Name carries the raw
// source string when Kind does not cover a dialect-specific primitive.
func (b *Builder) ConstructPrimitiveType(id string, kind model.PrimitiveKind, name string) *Builder {
	if b.err != nil {
		return b
	}
	pt := &model.PrimitiveType{Kind: kind, Name: name}
	pt.SetID(id)
	if !b.register(pt, "") {
		return b
	}
	b.model.Elements.PrimitiveTypes = append(b.model.Elements.PrimitiveTypes, pt)
	return b
}

// ClassifierParams carries the NamedElement fields shared by Class,
// Interface, and DataType.
type ClassifierParams struct {
	ID         string
	Name       string
	Visibility model.Visibility
}

func (p ClassifierParams) fields() model.ClassifierFields {
	vis := p.Visibility
	if vis == "" {
		vis = model.DefaultVisibility
	}
	return model.ClassifierFields{NamedElementFields: model.NamedElementFields{Name: p.Name, Visibility: vis}}
}

// ConstructClass registers a Class.
func (b *Builder) ConstructClass(p ClassifierParams) *Builder {
	if b.err != nil {
		return b
	}
	c := &model.Class{ClassifierFields: p.fields()}
	c.SetID(p.ID)
	if !b.register(c, "") {
		return b
	}
	b.model.Elements.Classes = append(b.model.Elements.Classes, c)
	return b
}

// ConstructInterface registers an Interface.
func (b *Builder) ConstructInterface(p ClassifierParams) *Builder {
	if b.err != nil {
		return b
	}
	i := &model.Interface{ClassifierFields: p.fields()}
	i.SetID(p.ID)
	if !b.register(i, "") {
		return b
	}
	b.model.Elements.Interfaces = append(b.model.Elements.Interfaces, i)
	return b
}

// ConstructDataType registers a DataType.
func (b *Builder) ConstructDataType(p ClassifierParams) *Builder {
	if b.err != nil {
		return b
	}
	d := &model.DataType{ClassifierFields: p.fields()}
	d.SetID(p.ID)
	if !b.register(d, "") {
		return b
	}
	b.model.Elements.DataTypes = append(b.model.Elements.DataTypes, d)
	return b
}

// ConstructEnumeration registers an Enumeration with its ordered literal
// sequence, kept in source order.
func (b *Builder) ConstructEnumeration(id, name string, visibility model.Visibility, literals []string) *Builder {
	if b.err != nil {
		return b
	}
	if visibility == "" {
		visibility = model.DefaultVisibility
	}
	e := &model.Enumeration{
		NamedElementFields: model.NamedElementFields{Name: name, Visibility: visibility},
		Literals:           append([]string(nil), literals...),
	}
	e.SetID(id)
	if !b.register(e, "") {
		return b
	}
	b.model.Elements.Enumerations = append(b.model.Elements.Enumerations, e)
	return b
}

// AttributeParams describes an Attribute construction call. ClassifierID
// and TypeID are resolved or deferred; the attribute attaches to its
// classifier's ordered Attributes sequence once the classifier registers.
type AttributeParams struct {
	ID           string
	ClassifierID string
	Name         string
	Visibility   model.Visibility
	TypeID       string
	Static       bool
	Ordered      bool
	Unique       bool
	ReadOnly     bool
	Query        bool
	Derived      bool
	DerivedUnion bool
}

// ConstructAttribute registers an Attribute and queues its attachment to the
// owning classifier.
func (b *Builder) ConstructAttribute(p AttributeParams) *Builder {
	if b.err != nil {
		return b
	}
	vis := p.Visibility
	if vis == "" {
		vis = model.DefaultVisibility
	}
	a := &model.Attribute{
		NamedElementFields: model.NamedElementFields{Name: p.Name, Visibility: vis},
		ClassifierID:       p.ClassifierID,
		Static:             p.Static,
		Ordered:            p.Ordered,
		Unique:             p.Unique,
		ReadOnly:           p.ReadOnly,
		Query:              p.Query,
		Derived:            p.Derived,
		DerivedUnion:       p.DerivedUnion,
	}
	a.SetID(p.ID)
	b.typeable(p.TypeID, func(t model.Typeable) { a.Type = t })
	if !b.register(a, "") {
		return b
	}
	b.attachToClassifier(p.ClassifierID, func(fields *model.ClassifierFields) {
		fields.Attributes = append(fields.Attributes, a)
	})
	return b
}

// OperationParams describes an Operation construction call.
type OperationParams struct {
	ID           string
	ClassifierID string
	Name         string
	Visibility   model.Visibility
	ReturnTypeID string
	IsAbstract   bool
	Exceptions   []string
	Static       bool
	Ordered      bool
	Unique       bool
	Query        bool
	Derived      bool
	DerivedUnion bool
}

// ConstructOperation registers an Operation and queues its attachment to the
// owning classifier.
func (b *Builder) ConstructOperation(p OperationParams) *Builder {
	if b.err != nil {
		return b
	}
	vis := p.Visibility
	if vis == "" {
		vis = model.DefaultVisibility
	}
	op := &model.Operation{
		NamedElementFields: model.NamedElementFields{Name: p.Name, Visibility: vis},
		ClassifierID:       p.ClassifierID,
		IsAbstract:         p.IsAbstract,
		Exceptions:         append([]string(nil), p.Exceptions...),
		Static:             p.Static,
		Ordered:            p.Ordered,
		Unique:             p.Unique,
		Query:              p.Query,
		Derived:            p.Derived,
		DerivedUnion:       p.DerivedUnion,
	}
	op.SetID(p.ID)
	b.typeable(p.ReturnTypeID, func(t model.Typeable) { op.ReturnType = t })
	if !b.register(op, "") {
		return b
	}
	b.attachToClassifier(p.ClassifierID, func(fields *model.ClassifierFields) {
		fields.Operations = append(fields.Operations, op)
	})
	return b
}

// ConstructParameter registers a Parameter and queues its attachment to the
// owning Operation's ordered Parameters sequence.
func (b *Builder) ConstructParameter(id, operationID, name string, direction model.ParameterDirection, typeID string) *Builder {
	if b.err != nil {
		return b
	}
	param := &model.Parameter{
		NamedElementFields: model.NamedElementFields{Name: name},
		Direction:          direction,
	}
	param.SetID(id)
	b.typeable(typeID, func(t model.Typeable) { param.Type = t })
	if !b.register(param, "") {
		return b
	}
	b.resolveOrDefer(operationID, func(e model.Element) {
		if op, ok := e.(*model.Operation); ok {
			op.Parameters = append(op.Parameters, param)
		}
	})
	return b
}

// ConstructGeneralization registers a Generalization between two Classes.
func (b *Builder) ConstructGeneralization(id, specificID, generalID string) *Builder {
	if b.err != nil {
		return b
	}
	g := &model.Generalization{}
	g.SetID(id)
	b.resolveOrDefer(specificID, func(e model.Element) {
		if c, ok := e.(*model.Class); ok {
			g.Specific = c
		}
	})
	b.resolveOrDefer(generalID, func(e model.Element) {
		if c, ok := e.(*model.Class); ok {
			g.General = c
		}
	})
	if !b.register(g, "") {
		return b
	}
	b.model.Elements.Generalizations = append(b.model.Elements.Generalizations, g)
	return b
}

// ConstructDependency registers a Dependency between a client and a
// supplier Classifier.
func (b *Builder) ConstructDependency(id, clientID, supplierID string) *Builder {
	if b.err != nil {
		return b
	}
	d := &model.Dependency{}
	d.SetID(id)
	b.classifier(clientID, func(c model.Classifier) { d.Client = c })
	b.classifier(supplierID, func(c model.Classifier) { d.Supplier = c })
	if !b.register(d, "") {
		return b
	}
	b.model.Elements.Dependencies = append(b.model.Elements.Dependencies, d)
	return b
}

// ConstructRealization registers a Realization: a Dependency whose supplier
// is realized by the client.
func (b *Builder) ConstructRealization(id, clientID, supplierID string) *Builder {
	if b.err != nil {
		return b
	}
	r := &model.Realization{}
	r.SetID(id)
	b.classifier(clientID, func(c model.Classifier) { r.Client = c })
	b.classifier(supplierID, func(c model.Classifier) { r.Supplier = c })
	if !b.register(r, "") {
		return b
	}
	b.model.Elements.Realizations = append(b.model.Elements.Realizations, r)
	return b
}

// ConstructAssociation registers a bidirectional Association with exactly
// two ends.
func (b *Builder) ConstructAssociation(id, name string, end1, end2 AssociationEndParams) *Builder {
	if b.err != nil {
		return b
	}
	a := &model.Association{
		Name: name,
		End1: b.buildEnd(end1),
		End2: b.buildEnd(end2),
	}
	a.SetID(id)
	if !b.register(a, "") {
		return b
	}
	b.model.Elements.Associations = append(b.model.Elements.Associations, a)
	return b
}

func (b *Builder) constructDirected(name string, source, target AssociationEndParams) model.DirectedAssociation {
	return model.DirectedAssociation{
		Name:   name,
		Source: b.buildEnd(source),
		Target: b.buildEnd(target),
	}
}

// ConstructDirectedAssociation registers a DirectedAssociation; end1 aliases
// source and end2 aliases target.
func (b *Builder) ConstructDirectedAssociation(id, name string, source, target AssociationEndParams) *Builder {
	if b.err != nil {
		return b
	}
	d := &model.DirectedAssociation{}
	*d = b.constructDirected(name, source, target)
	d.SetID(id)
	if !b.register(d, "") {
		return b
	}
	b.model.Elements.Associations = append(b.model.Elements.Associations, d)
	return b
}

// ConstructAggregation registers an Aggregation (shared-ownership directed
// association).
func (b *Builder) ConstructAggregation(id, name string, source, target AssociationEndParams) *Builder {
	if b.err != nil {
		return b
	}
	agg := &model.Aggregation{DirectedAssociation: b.constructDirected(name, source, target)}
	agg.SetID(id)
	if !b.register(agg, "") {
		return b
	}
	b.model.Elements.Associations = append(b.model.Elements.Associations, agg)
	return b
}

// ConstructComposition registers a Composition (exclusive-ownership
// directed association).
func (b *Builder) ConstructComposition(id, name string, source, target AssociationEndParams) *Builder {
	if b.err != nil {
		return b
	}
	comp := &model.Composition{DirectedAssociation: b.constructDirected(name, source, target)}
	comp.SetID(id)
	if !b.register(comp, "") {
		return b
	}
	b.model.Elements.Associations = append(b.model.Elements.Associations, comp)
	return b
}

// ConstructPackage registers a Package. Elements are attached by
// AddPackageElement as each member is parsed, since a Package's ordered
// Elements list is populated incrementally.
func (b *Builder) ConstructPackage(id, name string, visibility model.Visibility) *Builder {
	if b.err != nil {
		return b
	}
	if visibility == "" {
		visibility = model.DefaultVisibility
	}
	p := &model.Package{NamedElementFields: model.NamedElementFields{Name: name, Visibility: visibility}}
	p.SetID(id)
	if !b.register(p, "") {
		return b
	}
	b.model.Elements.Packages = append(b.model.Elements.Packages, p)
	return b
}

// AddPackageElement queues elementID for appending to packageID's ordered
// Elements list, in the order this call is issued relative to sibling calls.
func (b *Builder) AddPackageElement(packageID, elementID string) *Builder {
	if b.err != nil {
		return b
	}
	b.resolveOrDefer(packageID, func(pe model.Element) {
		pkg, ok := pe.(*model.Package)
		if !ok {
			return
		}
		b.resolveOrDefer(elementID, func(member model.Element) {
			pkg.Elements = append(pkg.Elements, member)
		})
	})
	return b
}

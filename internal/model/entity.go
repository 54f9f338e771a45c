// Package model implements the canonical UML entity graph: a value graph
// with stable string identifiers, built from tagged variants plus small
// shared interfaces rather than deep class inheritance.
package model

// Element is the shared interface every canonical entity satisfies. It
// intentionally exposes only identity: variant-specific behaviour lives on
// the concrete struct types, never on this interface, so adding a new
// operation to one variant never forces a method on every other variant.
type Element interface {
	ID() string
}

// Typeable is satisfied by every entity that can serve as a type reference
// for an Attribute, Parameter, or Operation return type: PrimitiveType,
// Class, Interface, DataType, and Enumeration.
type Typeable interface {
	Element
	isTypeable()
}

// Classifier is satisfied by Class, Interface, and DataType: the three
// variants that own ordered Attribute/Operation sequences.
type Classifier interface {
	Element
	isClassifier()
}

// AssociationLike is satisfied by Association and every DirectedAssociation
// variant (DirectedAssociation, Aggregation, Composition): anything with
// exactly two ends.
type AssociationLike interface {
	Element
	Ends() (end1, end2 *AssociationEnd)
}

// Fragment is satisfied by the three concrete element kinds that may appear,
// order-significant, inside Interaction.Fragments or Operand.Fragments:
// OccurrenceSpecification, CombinedFragment, InteractionUse.
type Fragment interface {
	Element
	isFragment()
}

// base carries the identity and non-owning back-reference every entity
// shares. It is embedded by value, never by pointer, so each concrete
// entity's zero value is immediately usable.
type base struct {
	id string
	// owner is a non-owning handle back to the Model that contains this
	// entity. Ownership of the entity's storage belongs to the Model's
	// ModelElements; this field exists only so an entity can answer "which
	// model am I part of" without the Model itself needing a reverse index.
	owner *Model
}

// ID returns the entity's identifier.
func (b *base) ID() string { return b.id }

// SetID changes the entity's identifier and returns the previous value so
// the caller (always the Builder) can re-register the entity with the
// owning Id-Resolver under the new id instead of leaving a stale entry.
func (b *base) SetID(id string) (previous string) {
	previous = b.id
	b.id = id
	return previous
}

// Owner returns the Model this entity belongs to, or nil if it has not been
// attached to one yet.
func (b *base) Owner() *Model { return b.owner }

// SetOwner records m as the non-owning back-reference for this entity. The
// Builder calls this when it registers the entity, before the duplicate-id
// check and before appending the entity to any Model list.
func (b *base) SetOwner(m *Model) { b.owner = m }

// NamedElementFields is the composable mixin for the NamedElement variant
// described in the data model. Attribute, Operation, and every other
// NamedElement-derived entity embed this struct by value instead of
// inheriting from a NamedElement base type.
type NamedElementFields struct {
	Name       string
	Visibility Visibility
}

// ClassifierFields is the composable mixin shared by Class, Interface, and
// DataType: a NamedElement plus ordered Attribute/Operation sequences.
type ClassifierFields struct {
	NamedElementFields
	Attributes []*Attribute
	Operations []*Operation
}

func (c *ClassifierFields) isTypeable()   {}
func (c *ClassifierFields) isClassifier() {}

// PrimitiveType is a built-in or free-form UML primitive.
type PrimitiveType struct {
	base
	Kind PrimitiveKind
	// Name carries the raw source string when Kind does not capture it
	// (e.g. a dialect-specific primitive with no canonical mapping).
	Name string
}

func (p *PrimitiveType) isTypeable() {}

// Class is a concrete, instantiable classifier with generalizations and
// realizations.
type Class struct {
	base
	ClassifierFields
	Generalizations []*Generalization
	Realizations    []*Realization
}

// Interface is a classifier with no generalizations/realizations of its own
// (it is instead the target of other elements' Realization).
type Interface struct {
	base
	ClassifierFields
}

// DataType is a classifier representing a structured value type.
type DataType struct {
	base
	ClassifierFields
}

// Enumeration is a NamedElement with an ordered list of literal strings.
type Enumeration struct {
	base
	NamedElementFields
	Literals []string
}

func (e *Enumeration) isTypeable() {}

// Attribute is a NamedElement owned by a Classifier, with a type reference
// and the UML property flags.
type Attribute struct {
	base
	NamedElementFields
	Type         Typeable
	ClassifierID string
	Static       bool
	Ordered      bool
	Unique       bool
	ReadOnly     bool
	Query        bool
	Derived      bool
	DerivedUnion bool
}

// Parameter is a NamedElement owned by an Operation, with a type reference
// and a direction.
type Parameter struct {
	base
	NamedElementFields
	Type      Typeable
	Direction ParameterDirection
}

// Operation is a NamedElement owned by a Classifier: an ordered parameter
// list, an optional return type, and the same property flags as Attribute
// minus ReadOnly (operations are not themselves settable state).
type Operation struct {
	base
	NamedElementFields
	Parameters   []*Parameter
	ReturnType   Typeable
	IsAbstract   bool
	Exceptions   []string
	ClassifierID string
	Static       bool
	Ordered      bool
	Unique       bool
	Query        bool
	Derived      bool
	DerivedUnion bool
}

// Generalization is an ordered specific->general pair between two Classes.
type Generalization struct {
	base
	Specific *Class
	General  *Class
}

// Dependency relates a client element to the supplier it depends on.
type Dependency struct {
	base
	Client   Classifier
	Supplier Classifier
}

// Realization is a Dependency whose supplier is realized by the client
// (composition over the Dependency fields rather than inheritance).
type Realization struct {
	Dependency
}

// AssociationEnd is one side of an Association or DirectedAssociation.
type AssociationEnd struct {
	Element      Element
	Role         string
	Multiplicity Multiplicity
	Navigability bool
}

// Association is a bidirectional relationship owning exactly two ends.
type Association struct {
	base
	Name string
	End1 *AssociationEnd
	End2 *AssociationEnd
}

// Ends returns the association's two ends in declaration order.
func (a *Association) Ends() (end1, end2 *AssociationEnd) { return a.End1, a.End2 }

// DirectedAssociation is a relationship with a distinguished source and
// target end; End1 aliases Source and End2 aliases Target.
type DirectedAssociation struct {
	base
	Name   string
	Source *AssociationEnd
	Target *AssociationEnd
}

// Ends returns (Source, Target), satisfying AssociationLike.
func (d *DirectedAssociation) Ends() (end1, end2 *AssociationEnd) { return d.Source, d.Target }

// Aggregation is a DirectedAssociation denoting shared ownership.
type Aggregation struct {
	DirectedAssociation
}

// Composition is a DirectedAssociation denoting exclusive ownership.
type Composition struct {
	DirectedAssociation
}

// Lifeline is a NamedElement in a sequence diagram representing a
// participant, typically a Class or Interface instance.
type Lifeline struct {
	base
	NamedElementFields
	Represents Classifier
}

// OccurrenceSpecification marks a point on a Lifeline's timeline.
type OccurrenceSpecification struct {
	base
	Covered *Lifeline
}

func (o *OccurrenceSpecification) isFragment() {}

// Message connects a send and receive OccurrenceSpecification.
type Message struct {
	base
	Name         string
	SendEvent    *OccurrenceSpecification
	ReceiveEvent *OccurrenceSpecification
	Signature    *Operation
	Arguments    []string
	Sort         MessageSort
	Kind         MessageKind
}

// Operand is one branch of a CombinedFragment: an optional guard plus an
// ordered fragment sequence.
type Operand struct {
	base
	Guard     string
	Fragments []Fragment
}

// CombinedFragment groups covered lifelines and operands under an
// interaction operator.
type CombinedFragment struct {
	base
	Covered  []*Lifeline
	Operands []*Operand
	Operator CombinedFragmentOperator
}

func (c *CombinedFragment) isFragment() {}

// InteractionUse references another Interaction inline.
type InteractionUse struct {
	base
	Interaction *Interaction
	Covered     []*Lifeline
}

func (i *InteractionUse) isFragment() {}

// Interaction is a NamedElement holding lifelines, messages, and a single
// ordered fragment sequence whose order represents execution order.
type Interaction struct {
	base
	NamedElementFields
	Lifelines []*Lifeline
	Messages  []*Message
	Fragments []Fragment
}

// Package is a NamedElement containing an ordered list of elements.
type Package struct {
	base
	NamedElementFields
	Elements []Element
}

package model

// ModelElements holds the owning, parallel sequences of every top-level
// entity variant. This is the only owning storage in the canonical model;
// every other reference to an entity elsewhere in the graph is non-owning.
type ModelElements struct {
	Classes         []*Class
	Interfaces      []*Interface
	DataTypes       []*DataType
	Enumerations    []*Enumeration
	PrimitiveTypes  []*PrimitiveType
	Associations    []AssociationLike
	Generalizations []*Generalization
	Dependencies    []*Dependency
	Realizations    []*Realization
	Interactions    []*Interaction
	Packages        []*Package
}

// ClassDiagramElements references class-diagram-eligible elements by id;
// diagrams do not own elements.
type ClassDiagramElements struct {
	ElementIDs []string
}

// SequenceDiagramElements references sequence-diagram-eligible elements by
// id; diagrams do not own elements.
type SequenceDiagramElements struct {
	ElementIDs []string
}

// ClassDiagram is a NamedElement whose membership is by id-reference only.
type ClassDiagram struct {
	base
	NamedElementFields
	Elements ClassDiagramElements
}

// SequenceDiagram is a NamedElement whose membership is by id-reference
// only.
type SequenceDiagram struct {
	base
	NamedElementFields
	Elements SequenceDiagramElements
}

// Diagrams holds the two parallel diagram sequences.
type Diagrams struct {
	ClassDiagrams    []*ClassDiagram
	SequenceDiagrams []*SequenceDiagram
}

// Model is the root NamedElement: metadata plus the owning ModelElements and
// the id-referencing Diagrams.
type Model struct {
	base
	NamedElementFields
	Metadata map[string]any
	Elements ModelElements
	Diagrams Diagrams
}

// NewModel constructs an empty, named Model ready to be populated by a
// Builder.
func NewModel(id, name string) *Model {
	m := &Model{
		NamedElementFields: NamedElementFields{Name: name, Visibility: DefaultVisibility},
		Metadata:           make(map[string]any),
	}
	m.id = id
	m.owner = m
	return m
}

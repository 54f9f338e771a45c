package builder

import "github.com/umltranslator/translator-go/internal/model"

// ConstructClassDiagram registers a ClassDiagram. Membership is by id alone:
// elementIDs is stored verbatim, with no resolution against the Id-Resolver,
// so dropping a diagram never removes the elements it references.
func (b *Builder) ConstructClassDiagram(id, name string, elementIDs []string) *Builder {
	if b.err != nil {
		return b
	}
	cd := &model.ClassDiagram{
		NamedElementFields: model.NamedElementFields{Name: name, Visibility: model.DefaultVisibility},
		Elements:           model.ClassDiagramElements{ElementIDs: append([]string(nil), elementIDs...)},
	}
	cd.SetID(id)
	if !b.register(cd, "") {
		return b
	}
	b.model.Diagrams.ClassDiagrams = append(b.model.Diagrams.ClassDiagrams, cd)
	return b
}

// ConstructSequenceDiagram registers a SequenceDiagram. Membership is by id
// alone.
func (b *Builder) ConstructSequenceDiagram(id, name string, elementIDs []string) *Builder {
	if b.err != nil {
		return b
	}
	sd := &model.SequenceDiagram{
		NamedElementFields: model.NamedElementFields{Name: name, Visibility: model.DefaultVisibility},
		Elements:           model.SequenceDiagramElements{ElementIDs: append([]string(nil), elementIDs...)},
	}
	sd.SetID(id)
	if !b.register(sd, "") {
		return b
	}
	b.model.Diagrams.SequenceDiagrams = append(b.model.Diagrams.SequenceDiagrams, sd)
	return b
}

// AddDiagramElement appends elementID to an already-registered
// ClassDiagram's or SequenceDiagram's ElementIDs, resolving diagramID but
// never the elementID itself (diagram membership is by id only).
func (b *Builder) AddDiagramElement(diagramID, elementID string) *Builder {
	if b.err != nil {
		return b
	}
	b.resolveOrDefer(diagramID, func(e model.Element) {
		switch d := e.(type) {
		case *model.ClassDiagram:
			d.Elements.ElementIDs = append(d.Elements.ElementIDs, elementID)
		case *model.SequenceDiagram:
			d.Elements.ElementIDs = append(d.Elements.ElementIDs, elementID)
		}
	})
	return b
}

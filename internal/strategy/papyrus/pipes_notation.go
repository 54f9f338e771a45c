package papyrus

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
)

func notationAttr(el *xmlpipe.Element, key string) string {
	v, _ := el.Attr(mustString("notation", "attrs", key))
	return v
}

// diagramPipe matches the .notation document root and records the diagram
// it describes together with the semantic elements it displays, resolved
// purely by id — the notation document never carries the elements
// themselves, only references into the .uml half (invariant: diagram
// membership is id-only).
type diagramPipe struct {
	pipeline.Base
}

func (p *diagramPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	return ok && kindOf(el) == kindNotation
}

func (p *diagramPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id, name := notationAttr(el, "id"), notationAttr(el, "name")

	var elementIDs []string
	var shapes []*xmlpipe.Element
	for _, child := range el.Children {
		if child.QualifiedName() == mustString("notation", "tags", "child") {
			shapes = append(shapes, child)
			if ref := notationAttr(child, "semantic_element"); ref != "" {
				elementIDs = append(elementIDs, ref)
			}
		}
	}

	switch notationAttr(el, "diagram_type") {
	case mustString("notation", "diagram_type", "sequence_diagram"):
		p.Builder().ConstructSequenceDiagram(id, name, elementIDs)
	default:
		p.Builder().ConstructClassDiagram(id, name, elementIDs)
	}
	return pipeline.YieldNone()
}

// buildNotationProcessingTree assembles the .notation-side pipe tree.
func buildNotationProcessingTree(bld *builder.Builder) pipeline.Pipe {
	root := &diagramPipe{}
	root.SetBuilder(bld)
	return root
}

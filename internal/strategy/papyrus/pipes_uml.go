package papyrus

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
)

var umlVisibilityTable = mustStringMap("uml", "visibility_map")
var umlPrimitiveTable = mustStringMap("uml", "primitive_map")
var umlMessageSortTable = mustStringMap("uml", "message_sort_map")
var umlMessageKindTable = mustStringMap("uml", "message_kind_map")

var primitiveKindByCanonical = map[string]model.PrimitiveKind{
	"int":     model.PrimitiveInt,
	"real":    model.PrimitiveReal,
	"float":   model.PrimitiveFloat,
	"string":  model.PrimitiveString,
	"boolean": model.PrimitiveBoolean,
	"char":    model.PrimitiveChar,
	"void":    model.PrimitiveVoid,
}

func umlAttr(el *xmlpipe.Element, key string) string {
	v, _ := el.Attr(mustString("uml", "attrs", key))
	return v
}

func umlChildrenNamed(el *xmlpipe.Element, tag string) []*xmlpipe.Element {
	var out []*xmlpipe.Element
	for _, c := range el.Children {
		if c.QualifiedName() == tag {
			out = append(out, c)
		}
	}
	return out
}

func umlVisibility(el *xmlpipe.Element) model.Visibility {
	v := umlAttr(el, "visibility")
	if v == "" {
		return model.DefaultVisibility
	}
	if mapped, ok := umlVisibilityTable[v]; ok {
		return model.Visibility(mapped)
	}
	return model.DefaultVisibility
}

// modelPipe matches the document root (Model) directly — unlike EA-XMI,
// Papyrus's .uml side carries no enclosing XMI/Documentation wrapper — and
// dispatches each top-level packagedElement.
type modelPipe struct {
	pipeline.Base
}

func (p *modelPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	return ok && kindOf(el) == kindUML
}

func (p *modelPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var out []pipeline.DataBatch
	for _, child := range umlChildrenNamed(el, mustString("uml", "tags", "packaged_element")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

func newTypedPipe(xmiType string) xmlpipe.Pipe {
	return xmlpipe.Pipe{
		AssociatedTag: mustString("uml", "tags", "packaged_element"),
		Conditions: []xmlpipe.AttributeCondition{
			{Key: mustString("uml", "attrs", "type"), ExpectedValue: xmiType},
		},
	}
}

type classPipe struct{ xmlpipe.Pipe }

func newClassPipe() *classPipe {
	return &classPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "class"))}
}

func (p *classPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructClass(builder.ClassifierParams{ID: id, Name: umlAttr(el, "name"), Visibility: umlVisibility(el)})
	return yieldMembers(el, id)
}

type interfacePipe struct{ xmlpipe.Pipe }

func newInterfacePipe() *interfacePipe {
	return &interfacePipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "interface"))}
}

func (p *interfacePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructInterface(builder.ClassifierParams{ID: id, Name: umlAttr(el, "name"), Visibility: umlVisibility(el)})
	return yieldMembers(el, id)
}

type dataTypePipe struct{ xmlpipe.Pipe }

func newDataTypePipe() *dataTypePipe {
	return &dataTypePipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "datatype"))}
}

func (p *dataTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructDataType(builder.ClassifierParams{ID: id, Name: umlAttr(el, "name"), Visibility: umlVisibility(el)})
	return yieldMembers(el, id)
}

func yieldMembers(el *xmlpipe.Element, classifierID string) iter.Seq2[pipeline.DataBatch, error] {
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.QualifiedName() {
		case mustString("uml", "tags", "owned_attribute"), mustString("uml", "tags", "owned_operation"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), classifierID)})
		}
	}
	return pipeline.Yield(out)
}

type attributePipe struct{ xmlpipe.Pipe }

func newAttributePipe() *attributePipe {
	return &attributePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("uml", "tags", "owned_attribute")}}
}

func (p *attributePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructAttribute(builder.AttributeParams{
		ID:           umlAttr(el, "id"),
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         umlAttr(el, "name"),
		Visibility:   umlVisibility(el),
		TypeID:       umlAttr(el, "type_ref"),
	})
	return pipeline.YieldNone()
}

type operationPipe struct{ xmlpipe.Pipe }

func newOperationPipe() *operationPipe {
	return &operationPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("uml", "tags", "owned_operation")}}
}

func (p *operationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructOperation(builder.OperationParams{
		ID:           id,
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         umlAttr(el, "name"),
		Visibility:   umlVisibility(el),
		ReturnTypeID: umlAttr(el, "type_ref"),
	})
	var out []pipeline.DataBatch
	for _, child := range umlChildrenNamed(el, mustString("uml", "tags", "owned_parameter")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
	}
	return pipeline.Yield(out)
}

type parameterPipe struct{ xmlpipe.Pipe }

func newParameterPipe() *parameterPipe {
	return &parameterPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("uml", "tags", "owned_parameter")}}
}

func (p *parameterPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	direction := model.ParameterDirection(umlAttr(el, "direction"))
	if direction == "" {
		direction = model.DirectionIn
	}
	p.Builder().ConstructParameter(umlAttr(el, "id"), pipeline.ParentID(batch.Parent), umlAttr(el, "name"), direction, umlAttr(el, "type_ref"))
	return pipeline.YieldNone()
}

type enumerationPipe struct{ xmlpipe.Pipe }

func newEnumerationPipe() *enumerationPipe {
	return &enumerationPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "enumeration"))}
}

func (p *enumerationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var literals []string
	for _, child := range umlChildrenNamed(el, mustString("uml", "tags", "owned_literal")) {
		literals = append(literals, umlAttr(child, "name"))
	}
	p.Builder().ConstructEnumeration(umlAttr(el, "id"), umlAttr(el, "name"), umlVisibility(el), literals)
	return pipeline.YieldNone()
}

type primitiveTypePipe struct{ xmlpipe.Pipe }

func newPrimitiveTypePipe() *primitiveTypePipe {
	return &primitiveTypePipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "primitive_type"))}
}

func (p *primitiveTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	name := umlAttr(el, "name")
	var kind model.PrimitiveKind
	if canonical, ok := umlPrimitiveTable[name]; ok {
		kind = primitiveKindByCanonical[canonical]
	}
	p.Builder().ConstructPrimitiveType(umlAttr(el, "id"), kind, name)
	return pipeline.YieldNone()
}

type associationPipe struct{ xmlpipe.Pipe }

func newAssociationPipe() *associationPipe {
	return &associationPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "association"))}
}

func umlEndParams(el *xmlpipe.Element) builder.AssociationEndParams {
	return builder.AssociationEndParams{
		ElementID:    umlAttr(el, "type_ref"),
		Role:         umlAttr(el, "role"),
		Multiplicity: model.Multiplicity(umlAttr(el, "multiplicity")),
		Navigability: umlAttr(el, "navigable") == "true",
	}
}

func (p *associationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	ends := umlChildrenNamed(el, mustString("uml", "tags", "owned_end"))
	id, name := umlAttr(el, "id"), umlAttr(el, "name")
	if len(ends) != 2 {
		return pipeline.YieldNone()
	}
	end1, end2 := umlEndParams(ends[0]), umlEndParams(ends[1])
	switch umlAttr(ends[1], "aggregation") {
	case "composite":
		p.Builder().ConstructComposition(id, name, end1, end2)
	case "shared":
		p.Builder().ConstructAggregation(id, name, end1, end2)
	default:
		p.Builder().ConstructAssociation(id, name, end1, end2)
	}
	return pipeline.YieldNone()
}

type generalizationPipe struct{ xmlpipe.Pipe }

func newGeneralizationPipe() *generalizationPipe {
	return &generalizationPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "generalization"))}
}

func (p *generalizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructGeneralization(umlAttr(el, "id"), umlAttr(el, "specific"), umlAttr(el, "general"))
	return pipeline.YieldNone()
}

type realizationPipe struct{ xmlpipe.Pipe }

func newRealizationPipe() *realizationPipe {
	return &realizationPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "realization"))}
}

func (p *realizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructRealization(umlAttr(el, "id"), umlAttr(el, "client"), umlAttr(el, "supplier"))
	return pipeline.YieldNone()
}

type packagePipe struct{ xmlpipe.Pipe }

func newPackagePipe() *packagePipe {
	return &packagePipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "package"))}
}

func (p *packagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructPackage(id, umlAttr(el, "name"), umlVisibility(el))
	var out []pipeline.DataBatch
	for _, child := range umlChildrenNamed(el, mustString("uml", "tags", "packaged_element")) {
		childID := umlAttr(child, "id")
		p.Builder().AddPackageElement(id, childID)
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type interactionPipe struct{ xmlpipe.Pipe }

func newInteractionPipe() *interactionPipe {
	return &interactionPipe{Pipe: newTypedPipe(mustString("uml", "xmi_type", "interaction"))}
}

func (p *interactionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := umlAttr(el, "id")
	p.Builder().ConstructInteraction(id, umlAttr(el, "name"), umlVisibility(el))
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.QualifiedName() {
		case mustString("uml", "tags", "lifeline"), mustString("uml", "tags", "message"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
		}
	}
	return pipeline.Yield(out)
}

type lifelinePipe struct{ xmlpipe.Pipe }

func newLifelinePipe() *lifelinePipe {
	return &lifelinePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("uml", "tags", "lifeline")}}
}

func (p *lifelinePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructLifeline(umlAttr(el, "id"), pipeline.ParentID(batch.Parent), umlAttr(el, "name"), umlAttr(el, "represents"))
	return pipeline.YieldNone()
}

// umlMessageSortKind maps the element's messageSort/messageKind attributes
// through the dialect's enum tables. Unmappable or absent values are
// dropped, leaving the canonical defaults (synchCall, complete) to apply.
func umlMessageSortKind(el *xmlpipe.Element) (model.MessageSort, model.MessageKind) {
	bag := map[string]string{}
	if v := umlAttr(el, "sort"); v != "" {
		bag["sort"] = v
	}
	if v := umlAttr(el, "kind"); v != "" {
		bag["kind"] = v
	}
	_ = xmlpipe.MapValueFromKey(bag, "sort", umlMessageSortTable, false)
	_ = xmlpipe.MapValueFromKey(bag, "kind", umlMessageKindTable, false)
	sort, kind := model.SortSynchCall, model.KindComplete
	if v, ok := bag["sort"]; ok {
		sort = model.MessageSort(v)
	}
	if v, ok := bag["kind"]; ok {
		kind = model.MessageKind(v)
	}
	return sort, kind
}

type messagePipe struct{ xmlpipe.Pipe }

func newMessagePipe() *messagePipe {
	return &messagePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("uml", "tags", "message")}}
}

func (p *messagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	interactionID := pipeline.ParentID(batch.Parent)
	id := umlAttr(el, "id")
	sendID, recvID := id+"#send", id+"#recv"
	p.Builder().
		ConstructOccurrenceSpecification(sendID, interactionID, umlAttr(el, "source")).
		ConstructOccurrenceSpecification(recvID, interactionID, umlAttr(el, "target"))
	sort, kind := umlMessageSortKind(el)
	p.Builder().ConstructMessage(builder.MessageParams{
		ID:             id,
		InteractionID:  interactionID,
		Name:           umlAttr(el, "name"),
		SendEventID:    sendID,
		ReceiveEventID: recvID,
		Sort:           sort,
		Kind:           kind,
	})
	return pipeline.YieldNone()
}

// buildUMLProcessingTree assembles the .uml-side pipe tree, sharing bld
// across every node.
func buildUMLProcessingTree(bld *builder.Builder) pipeline.Pipe {
	root := &modelPipe{}
	root.SetBuilder(bld)

	class, iface, dt, enum, prim, assoc, gen, real, pkg, interaction :=
		newClassPipe(), newInterfacePipe(), newDataTypePipe(), newEnumerationPipe(), newPrimitiveTypePipe(),
		newAssociationPipe(), newGeneralizationPipe(), newRealizationPipe(), newPackagePipe(), newInteractionPipe()
	for _, child := range []pipeline.Pipe{class, iface, dt, enum, prim, assoc, gen, real, pkg, interaction} {
		pipeline.Connect(root, child)
		pipeline.Connect(pkg, child)
	}

	attrPipe, opPipe, paramPipe := newAttributePipe(), newOperationPipe(), newParameterPipe()
	for _, classifier := range []pipeline.Pipe{class, iface, dt} {
		pipeline.Connect(classifier, attrPipe)
		pipeline.Connect(classifier, opPipe)
	}
	pipeline.Connect(opPipe, paramPipe)

	lifeline, message := newLifelinePipe(), newMessagePipe()
	pipeline.Connect(interaction, lifeline)
	pipeline.Connect(interaction, message)

	return root
}

package eaxmi

import (
	"context"
	"iter"
	"strings"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
)

var visibilityTable = mustStringMap("visibility_map")
var primitiveTable = mustStringMap("primitive_map")
var messageSortTable = mustStringMap("message_sort_map")
var messageKindTable = mustStringMap("message_kind_map")

func attr(el *xmlpipe.Element, key string) string {
	v, _ := el.Attr(mustString("attrs", key))
	return v
}

func childrenNamed(el *xmlpipe.Element, tag string) []*xmlpipe.Element {
	var out []*xmlpipe.Element
	for _, c := range el.Children {
		if c.QualifiedName() == tag {
			out = append(out, c)
		}
	}
	return out
}

func boolAttr(el *xmlpipe.Element, key string) bool {
	return attr(el, key) == "true"
}

func visibility(el *xmlpipe.Element) model.Visibility {
	v := attr(el, "visibility")
	if v == "" {
		return model.DefaultVisibility
	}
	if mapped, ok := visibilityTable[v]; ok {
		return model.Visibility(mapped)
	}
	return model.DefaultVisibility
}

// rootPipe matches the document root (XMI) and dispatches its Model and
// Extension children for further processing.
type rootPipe struct {
	pipeline.Base
}

func (p *rootPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	return ok && el.Name.Local == mustString("root", "tag")
}

func (p *rootPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.Name.Local {
		case mustString("tags", "model"), mustString("extension", "tag"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
		}
	}
	return pipeline.Yield(out)
}

// modelPipe matches the Model element and dispatches each top-level
// packagedElement.
type modelPipe struct {
	pipeline.Base
}

func (p *modelPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	return ok && el.Name.Local == mustString("tags", "model")
}

func (p *modelPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var out []pipeline.DataBatch
	for _, child := range childrenNamed(el, mustString("tags", "packaged_element")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

// typedPipe is embedded by every packagedElement variant: it carries the
// xmi:type discriminator matching via xmlpipe.Pipe's AttributeCondition.
type typedPipe struct {
	xmlpipe.Pipe
}

func newTypedPipe(xmiType string) xmlpipe.Pipe {
	return xmlpipe.Pipe{
		AssociatedTag: mustString("tags", "packaged_element"),
		Conditions: []xmlpipe.AttributeCondition{
			{Key: mustString("attrs", "type"), ExpectedValue: xmiType},
		},
	}
}

type classPipe struct{ xmlpipe.Pipe }

func newClassPipe() *classPipe {
	return &classPipe{Pipe: newTypedPipe(mustString("xmi_type", "class"))}
}

func (p *classPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructClass(builder.ClassifierParams{ID: id, Name: attr(el, "name"), Visibility: visibility(el)})
	return yieldMembers(el, id)
}

type interfacePipe struct{ xmlpipe.Pipe }

func newInterfacePipe() *interfacePipe {
	return &interfacePipe{Pipe: newTypedPipe(mustString("xmi_type", "interface"))}
}

func (p *interfacePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructInterface(builder.ClassifierParams{ID: id, Name: attr(el, "name"), Visibility: visibility(el)})
	return yieldMembers(el, id)
}

type dataTypePipe struct{ xmlpipe.Pipe }

func newDataTypePipe() *dataTypePipe {
	return &dataTypePipe{Pipe: newTypedPipe(mustString("xmi_type", "datatype"))}
}

func (p *dataTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructDataType(builder.ClassifierParams{ID: id, Name: attr(el, "name"), Visibility: visibility(el)})
	return yieldMembers(el, id)
}

// yieldMembers dispatches a classifier's ownedAttribute/ownedOperation
// children, tagging each with its owning classifier id as parent context.
func yieldMembers(el *xmlpipe.Element, classifierID string) iter.Seq2[pipeline.DataBatch, error] {
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.QualifiedName() {
		case mustString("tags", "owned_attribute"), mustString("tags", "owned_operation"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), classifierID)})
		}
	}
	return pipeline.Yield(out)
}

type attributePipe struct{ xmlpipe.Pipe }

func newAttributePipe() *attributePipe {
	return &attributePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "owned_attribute")}}
}

func (p *attributePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructAttribute(builder.AttributeParams{
		ID:           attr(el, "id"),
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         attr(el, "name"),
		Visibility:   visibility(el),
		TypeID:       attr(el, "type_ref"),
		Static:       boolAttr(el, "is_static"),
		ReadOnly:     boolAttr(el, "is_read_only"),
		Query:        boolAttr(el, "is_query"),
		Derived:      boolAttr(el, "is_derived"),
	})
	return pipeline.YieldNone()
}

type operationPipe struct{ xmlpipe.Pipe }

func newOperationPipe() *operationPipe {
	return &operationPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "owned_operation")}}
}

func (p *operationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructOperation(builder.OperationParams{
		ID:           id,
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         attr(el, "name"),
		Visibility:   visibility(el),
		ReturnTypeID: attr(el, "type_ref"),
		IsAbstract:   boolAttr(el, "is_abstract"),
		Static:       boolAttr(el, "is_static"),
		Query:        boolAttr(el, "is_query"),
		Derived:      boolAttr(el, "is_derived"),
	})
	var out []pipeline.DataBatch
	for _, child := range childrenNamed(el, mustString("tags", "owned_parameter")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
	}
	return pipeline.Yield(out)
}

type parameterPipe struct{ xmlpipe.Pipe }

func newParameterPipe() *parameterPipe {
	return &parameterPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "owned_parameter")}}
}

func (p *parameterPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	direction := model.ParameterDirection(attr(el, "direction"))
	if direction == "" {
		direction = model.DirectionIn
	}
	p.Builder().ConstructParameter(attr(el, "id"), pipeline.ParentID(batch.Parent), attr(el, "name"), direction, attr(el, "type_ref"))
	return pipeline.YieldNone()
}

type enumerationPipe struct{ xmlpipe.Pipe }

func newEnumerationPipe() *enumerationPipe {
	return &enumerationPipe{Pipe: newTypedPipe(mustString("xmi_type", "enumeration"))}
}

func (p *enumerationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var literals []string
	for _, child := range childrenNamed(el, mustString("tags", "owned_literal")) {
		literals = append(literals, attr(child, "name"))
	}
	p.Builder().ConstructEnumeration(attr(el, "id"), attr(el, "name"), visibility(el), literals)
	return pipeline.YieldNone()
}

type primitiveTypePipe struct{ xmlpipe.Pipe }

func newPrimitiveTypePipe() *primitiveTypePipe {
	return &primitiveTypePipe{Pipe: newTypedPipe(mustString("xmi_type", "primitive_type"))}
}

var primitiveKindByCanonical = map[string]model.PrimitiveKind{
	"int":     model.PrimitiveInt,
	"real":    model.PrimitiveReal,
	"float":   model.PrimitiveFloat,
	"string":  model.PrimitiveString,
	"boolean": model.PrimitiveBoolean,
	"char":    model.PrimitiveChar,
	"void":    model.PrimitiveVoid,
}

func (p *primitiveTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	name := attr(el, "name")
	var kind model.PrimitiveKind
	if canonical, ok := primitiveTable[name]; ok {
		kind = primitiveKindByCanonical[canonical]
	}
	p.Builder().ConstructPrimitiveType(attr(el, "id"), kind, name)
	return pipeline.YieldNone()
}

type associationPipe struct{ xmlpipe.Pipe }

func newAssociationPipe() *associationPipe {
	return &associationPipe{Pipe: newTypedPipe(mustString("xmi_type", "association"))}
}

func endParams(el *xmlpipe.Element) builder.AssociationEndParams {
	return builder.AssociationEndParams{
		ElementID:    attr(el, "type_ref"),
		Role:         attr(el, "role"),
		Multiplicity: model.Multiplicity(attr(el, "multiplicity")),
		Navigability: boolAttr(el, "navigable"),
	}
}

func (p *associationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	ends := childrenNamed(el, mustString("tags", "owned_end"))
	id, name := attr(el, "id"), attr(el, "name")
	if len(ends) != 2 {
		return pipeline.YieldNone()
	}
	end1, end2 := endParams(ends[0]), endParams(ends[1])
	switch attr(ends[1], "aggregation") {
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
	return &generalizationPipe{Pipe: newTypedPipe(mustString("xmi_type", "generalization"))}
}

func (p *generalizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructGeneralization(attr(el, "id"), attr(el, "specific"), attr(el, "general"))
	return pipeline.YieldNone()
}

type realizationPipe struct{ xmlpipe.Pipe }

func newRealizationPipe() *realizationPipe {
	return &realizationPipe{Pipe: newTypedPipe(mustString("xmi_type", "realization"))}
}

func (p *realizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructRealization(attr(el, "id"), attr(el, "client"), attr(el, "supplier"))
	return pipeline.YieldNone()
}

type dependencyPipe struct{ xmlpipe.Pipe }

func newDependencyPipe() *dependencyPipe {
	return &dependencyPipe{Pipe: newTypedPipe(mustString("xmi_type", "dependency"))}
}

func (p *dependencyPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructDependency(attr(el, "id"), attr(el, "client"), attr(el, "supplier"))
	return pipeline.YieldNone()
}

type packagePipe struct{ xmlpipe.Pipe }

func newPackagePipe() *packagePipe {
	return &packagePipe{Pipe: newTypedPipe(mustString("xmi_type", "package"))}
}

func (p *packagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructPackage(id, attr(el, "name"), visibility(el))
	var out []pipeline.DataBatch
	for _, child := range childrenNamed(el, mustString("tags", "packaged_element")) {
		childID := attr(child, "id")
		p.Builder().AddPackageElement(id, childID)
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type interactionPipe struct{ xmlpipe.Pipe }

func newInteractionPipe() *interactionPipe {
	return &interactionPipe{Pipe: newTypedPipe(mustString("xmi_type", "interaction"))}
}

func (p *interactionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructInteraction(id, attr(el, "name"), visibility(el))
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.QualifiedName() {
		case mustString("tags", "lifeline"), mustString("tags", "message"),
			mustString("tags", "combined_fragment"), mustString("tags", "interaction_use"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
		}
	}
	return pipeline.Yield(out)
}

// coveredList splits the whitespace-separated list EA-XMI stores a
// fragment's covered-lifelines attribute as into individual idrefs.
func coveredList(el *xmlpipe.Element) []string {
	raw := attr(el, "covered")
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}

type lifelinePipe struct{ xmlpipe.Pipe }

func newLifelinePipe() *lifelinePipe {
	return &lifelinePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "lifeline")}}
}

func (p *lifelinePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructLifeline(attr(el, "id"), pipeline.ParentID(batch.Parent), attr(el, "name"), attr(el, "represents"))
	return pipeline.YieldNone()
}

// messageSortKind maps the element's messageSort/messageKind attributes
// through the dialect's enum tables. Unmappable or absent values are
// dropped, leaving the canonical defaults (synchCall, complete) to apply.
func messageSortKind(el *xmlpipe.Element) (model.MessageSort, model.MessageKind) {
	bag := map[string]string{}
	if v := attr(el, "sort"); v != "" {
		bag["sort"] = v
	}
	if v := attr(el, "kind"); v != "" {
		bag["kind"] = v
	}
	_ = xmlpipe.MapValueFromKey(bag, "sort", messageSortTable, false)
	_ = xmlpipe.MapValueFromKey(bag, "kind", messageKindTable, false)
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
	return &messagePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "message")}}
}

func (p *messagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	interactionID := pipeline.ParentID(batch.Parent)
	id := attr(el, "id")
	sendID, recvID := id+"#send", id+"#recv"
	p.Builder().
		ConstructOccurrenceSpecification(sendID, interactionID, attr(el, "source")).
		ConstructOccurrenceSpecification(recvID, interactionID, attr(el, "target"))
	sort, kind := messageSortKind(el)
	p.Builder().ConstructMessage(builder.MessageParams{
		ID:             id,
		InteractionID:  interactionID,
		Name:           attr(el, "name"),
		SendEventID:    sendID,
		ReceiveEventID: recvID,
		SignatureID:    attr(el, "signature"),
		Sort:           sort,
		Kind:           kind,
	})
	return pipeline.YieldNone()
}

type combinedFragmentPipe struct{ xmlpipe.Pipe }

func newCombinedFragmentPipe() *combinedFragmentPipe {
	return &combinedFragmentPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "combined_fragment")}}
}

func (p *combinedFragmentPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructCombinedFragment(id, pipeline.ParentID(batch.Parent), model.CombinedFragmentOperator(attr(el, "operator")), coveredList(el))
	var out []pipeline.DataBatch
	for _, child := range childrenNamed(el, mustString("tags", "operand")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
	}
	return pipeline.Yield(out)
}

type operandPipe struct{ xmlpipe.Pipe }

func newOperandPipe() *operandPipe {
	return &operandPipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "operand")}}
}

func (p *operandPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	id := attr(el, "id")
	p.Builder().ConstructOperand(id, pipeline.ParentID(batch.Parent), attr(el, "guard"))
	var out []pipeline.DataBatch
	for _, child := range el.Children {
		switch child.QualifiedName() {
		case mustString("tags", "message"), mustString("tags", "combined_fragment"), mustString("tags", "interaction_use"):
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
		}
	}
	return pipeline.Yield(out)
}

type interactionUsePipe struct{ xmlpipe.Pipe }

func newInteractionUsePipe() *interactionUsePipe {
	return &interactionUsePipe{Pipe: xmlpipe.Pipe{AssociatedTag: mustString("tags", "interaction_use")}}
}

func (p *interactionUsePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	p.Builder().ConstructInteractionUse(attr(el, "id"), pipeline.ParentID(batch.Parent), attr(el, "referenced"), coveredList(el))
	return pipeline.YieldNone()
}

// extensionPipe matches an Extension subtree whose extender attribute names
// Enterprise Architect and dispatches its diagram children. An Extension
// from another extender, or one without the attribute, is not matched.
type extensionPipe struct {
	pipeline.Base
}

func (p *extensionPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	if !ok || el.Name.Local != mustString("extension", "tag") {
		return false
	}
	extender, _ := el.Attr(mustString("extension", "extender_attr"))
	return extender == mustString("extension", "extender")
}

func (p *extensionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var out []pipeline.DataBatch
	for _, child := range childrenNamed(el, mustString("tags", "diagram")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type diagramPipe struct {
	pipeline.Base
}

func (p *diagramPipe) CanProcess(batch pipeline.DataBatch) bool {
	el, ok := batch.Data.(*xmlpipe.Element)
	return ok && el.QualifiedName() == mustString("tags", "diagram")
}

func (p *diagramPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	el := batch.Data.(*xmlpipe.Element)
	var elementIDs []string
	for _, child := range childrenNamed(el, mustString("tags", "diagram_element")) {
		elementIDs = append(elementIDs, attr(child, "idref"))
	}
	id, name := attr(el, "id"), attr(el, "name")
	switch attr(el, "type_ref") {
	case mustString("xmi_type", "sequence_diagram"):
		p.Builder().ConstructSequenceDiagram(id, name, elementIDs)
	default:
		p.Builder().ConstructClassDiagram(id, name, elementIDs)
	}
	return pipeline.YieldNone()
}

// buildProcessingTree assembles the full EA-XMI pipe tree, sharing bld
// across every node.
func buildProcessingTree(bld *builder.Builder) pipeline.Pipe {
	root := &rootPipe{}
	root.SetBuilder(bld)

	modelElement := &modelPipe{}
	pipeline.Connect(root, modelElement)

	class, iface, dt, enum, prim, assoc, gen, real, dep, pkg, interaction := newClassPipe(), newInterfacePipe(), newDataTypePipe(), newEnumerationPipe(), newPrimitiveTypePipe(), newAssociationPipe(), newGeneralizationPipe(), newRealizationPipe(), newDependencyPipe(), newPackagePipe(), newInteractionPipe()
	for _, child := range []pipeline.Pipe{class, iface, dt, enum, prim, assoc, gen, real, dep, pkg, interaction} {
		pipeline.Connect(modelElement, child)
		pipeline.Connect(pkg, child)
	}

	attrPipe, opPipe, paramPipe := newAttributePipe(), newOperationPipe(), newParameterPipe()
	for _, classifier := range []pipeline.Pipe{class, iface, dt} {
		pipeline.Connect(classifier, attrPipe)
		pipeline.Connect(classifier, opPipe)
	}
	pipeline.Connect(opPipe, paramPipe)

	lifeline, message, combinedFragment, interactionUse, operand := newLifelinePipe(), newMessagePipe(), newCombinedFragmentPipe(), newInteractionUsePipe(), newOperandPipe()
	pipeline.Connect(interaction, lifeline)
	pipeline.Connect(interaction, message)
	pipeline.Connect(interaction, combinedFragment)
	pipeline.Connect(interaction, interactionUse)
	pipeline.Connect(combinedFragment, operand)
	// Operand bodies may themselves nest a message, a combined fragment, or
	// an interaction use, mirroring Interaction's own fragment sequence.
	pipeline.Connect(operand, message)
	pipeline.Connect(operand, combinedFragment)
	pipeline.Connect(operand, interactionUse)

	ext := &extensionPipe{}
	pipeline.Connect(root, ext)
	diagram := &diagramPipe{}
	pipeline.Connect(ext, diagram)

	return root
}

package staruml

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/jsonpipe"
)

var visibilityTable = mustStringMap("visibility_map")
var primitiveTable = mustStringMap("primitive_map")
var messageSortTable = mustStringMap("message_sort_map")
var messageKindTable = mustStringMap("message_kind_map")

var primitiveKindByCanonical = map[string]model.PrimitiveKind{
	"int":     model.PrimitiveInt,
	"real":    model.PrimitiveReal,
	"float":   model.PrimitiveFloat,
	"string":  model.PrimitiveString,
	"boolean": model.PrimitiveBoolean,
	"char":    model.PrimitiveChar,
	"void":    model.PrimitiveVoid,
}

func str(node jsonpipe.Node, key string) string {
	v, _ := node[mustString("keys", key)]
	s, _ := v.(string)
	return s
}

// ref extracts an id from a value that is either the {"$ref": id} idiom or
// a bare string id.
func ref(node jsonpipe.Node, key string) string {
	v, ok := node[mustString("keys", key)]
	if !ok {
		return ""
	}
	if id, ok := jsonpipe.FlattenReference(v); ok {
		return id
	}
	s, _ := v.(string)
	return s
}

func nodesAt(node jsonpipe.Node, key string) []jsonpipe.Node {
	raw, ok := node[key]
	if !ok {
		return nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []jsonpipe.Node
	for _, item := range arr {
		if n, ok := item.(jsonpipe.Node); ok {
			out = append(out, n)
		}
	}
	return out
}

func nodeAt(node jsonpipe.Node, key string) (jsonpipe.Node, bool) {
	raw, ok := node[key]
	if !ok {
		return nil, false
	}
	n, ok := raw.(jsonpipe.Node)
	return n, ok
}

func visibility(node jsonpipe.Node) model.Visibility {
	v := str(node, "visibility")
	if v == "" {
		return model.DefaultVisibility
	}
	if mapped, ok := visibilityTable[v]; ok {
		return model.Visibility(mapped)
	}
	return model.DefaultVisibility
}

func newTypedPipe(discriminator string) jsonpipe.Pipe {
	return jsonpipe.Pipe{
		DiscriminatorKey:   mustString("discriminator_key"),
		DiscriminatorValue: discriminator,
	}
}

type projectPipe struct{ jsonpipe.Pipe }

func newProjectPipe() *projectPipe {
	return &projectPipe{Pipe: newTypedPipe(mustString("types", "project"))}
}

func (p *projectPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	var out []pipeline.DataBatch
	for _, child := range nodesAt(node, mustString("keys", "owned_elements")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type modelPipe struct{ jsonpipe.Pipe }

func newModelPipe() *modelPipe {
	return &modelPipe{Pipe: newTypedPipe(mustString("types", "model"))}
}

func (p *modelPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	var out []pipeline.DataBatch
	for _, child := range nodesAt(node, mustString("keys", "owned_elements")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type classPipe struct{ jsonpipe.Pipe }

func newClassPipe() *classPipe {
	return &classPipe{Pipe: newTypedPipe(mustString("types", "class"))}
}

func (p *classPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructClass(builder.ClassifierParams{ID: id, Name: str(node, "name"), Visibility: visibility(node)})
	return yieldMembers(node, id)
}

type interfacePipe struct{ jsonpipe.Pipe }

func newInterfacePipe() *interfacePipe {
	return &interfacePipe{Pipe: newTypedPipe(mustString("types", "interface"))}
}

func (p *interfacePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructInterface(builder.ClassifierParams{ID: id, Name: str(node, "name"), Visibility: visibility(node)})
	return yieldMembers(node, id)
}

type dataTypePipe struct{ jsonpipe.Pipe }

func newDataTypePipe() *dataTypePipe {
	return &dataTypePipe{Pipe: newTypedPipe(mustString("types", "datatype"))}
}

func (p *dataTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructDataType(builder.ClassifierParams{ID: id, Name: str(node, "name"), Visibility: visibility(node)})
	return yieldMembers(node, id)
}

func yieldMembers(node jsonpipe.Node, classifierID string) iter.Seq2[pipeline.DataBatch, error] {
	var out []pipeline.DataBatch
	for _, key := range []string{"attributes", "operations"} {
		for _, child := range nodesAt(node, mustString("keys", key)) {
			out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), classifierID)})
		}
	}
	return pipeline.Yield(out)
}

type attributePipe struct{ jsonpipe.Pipe }

func newAttributePipe() *attributePipe {
	return &attributePipe{Pipe: newTypedPipe(mustString("types", "attribute"))}
}

func (p *attributePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	p.Builder().ConstructAttribute(builder.AttributeParams{
		ID:           str(node, "id"),
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         str(node, "name"),
		Visibility:   visibility(node),
		TypeID:       ref(node, "type"),
	})
	return pipeline.YieldNone()
}

type operationPipe struct{ jsonpipe.Pipe }

func newOperationPipe() *operationPipe {
	return &operationPipe{Pipe: newTypedPipe(mustString("types", "operation"))}
}

func (p *operationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructOperation(builder.OperationParams{
		ID:           id,
		ClassifierID: pipeline.ParentID(batch.Parent),
		Name:         str(node, "name"),
		Visibility:   visibility(node),
		ReturnTypeID: ref(node, "type"),
	})
	var out []pipeline.DataBatch
	for _, child := range nodesAt(node, mustString("keys", "parameters")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
	}
	return pipeline.Yield(out)
}

type parameterPipe struct{ jsonpipe.Pipe }

func newParameterPipe() *parameterPipe {
	return &parameterPipe{Pipe: newTypedPipe(mustString("types", "parameter"))}
}

func (p *parameterPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	direction := model.ParameterDirection(str(node, "direction"))
	if direction == "" {
		direction = model.DirectionIn
	}
	p.Builder().ConstructParameter(str(node, "id"), pipeline.ParentID(batch.Parent), str(node, "name"), direction, ref(node, "type"))
	return pipeline.YieldNone()
}

type enumerationPipe struct{ jsonpipe.Pipe }

func newEnumerationPipe() *enumerationPipe {
	return &enumerationPipe{Pipe: newTypedPipe(mustString("types", "enumeration"))}
}

func (p *enumerationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	var literals []string
	for _, lit := range nodesAt(node, mustString("keys", "literals")) {
		literals = append(literals, str(lit, "name"))
	}
	p.Builder().ConstructEnumeration(str(node, "id"), str(node, "name"), visibility(node), literals)
	return pipeline.YieldNone()
}

type primitiveTypePipe struct{ jsonpipe.Pipe }

func newPrimitiveTypePipe() *primitiveTypePipe {
	return &primitiveTypePipe{Pipe: newTypedPipe(mustString("types", "primitive_type"))}
}

func (p *primitiveTypePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	name := str(node, "name")
	var kind model.PrimitiveKind
	if canonical, ok := primitiveTable[name]; ok {
		kind = primitiveKindByCanonical[canonical]
	}
	p.Builder().ConstructPrimitiveType(str(node, "id"), kind, name)
	return pipeline.YieldNone()
}

type associationPipe struct{ jsonpipe.Pipe }

func newAssociationPipe() *associationPipe {
	return &associationPipe{Pipe: newTypedPipe(mustString("types", "association"))}
}

func endParams(node jsonpipe.Node) builder.AssociationEndParams {
	return builder.AssociationEndParams{
		ElementID: ref(node, "reference"),
		Role:      str(node, "role"),
	}
}

func (p *associationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id, name := str(node, "id"), str(node, "name")
	end1Node, ok1 := nodeAt(node, mustString("keys", "end1"))
	end2Node, ok2 := nodeAt(node, mustString("keys", "end2"))
	if !ok1 || !ok2 {
		return pipeline.YieldNone()
	}
	end1, end2 := endParams(end1Node), endParams(end2Node)
	switch str(end2Node, "aggregation") {
	case "composite":
		p.Builder().ConstructComposition(id, name, end1, end2)
	case "shared":
		p.Builder().ConstructAggregation(id, name, end1, end2)
	default:
		p.Builder().ConstructAssociation(id, name, end1, end2)
	}
	return pipeline.YieldNone()
}

type generalizationPipe struct{ jsonpipe.Pipe }

func newGeneralizationPipe() *generalizationPipe {
	return &generalizationPipe{Pipe: newTypedPipe(mustString("types", "generalization"))}
}

func (p *generalizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	p.Builder().ConstructGeneralization(str(node, "id"), ref(node, "source"), ref(node, "target"))
	return pipeline.YieldNone()
}

type realizationPipe struct{ jsonpipe.Pipe }

func newRealizationPipe() *realizationPipe {
	return &realizationPipe{Pipe: newTypedPipe(mustString("types", "realization"))}
}

func (p *realizationPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	p.Builder().ConstructRealization(str(node, "id"), ref(node, "source"), ref(node, "target"))
	return pipeline.YieldNone()
}

type packagePipe struct{ jsonpipe.Pipe }

func newPackagePipe() *packagePipe {
	return &packagePipe{Pipe: newTypedPipe(mustString("types", "package"))}
}

func (p *packagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructPackage(id, str(node, "name"), visibility(node))
	var out []pipeline.DataBatch
	for _, child := range nodesAt(node, mustString("keys", "owned_elements")) {
		childID := str(child, "id")
		p.Builder().AddPackageElement(id, childID)
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.NewContext()})
	}
	return pipeline.Yield(out)
}

type interactionPipe struct{ jsonpipe.Pipe }

func newInteractionPipe() *interactionPipe {
	return &interactionPipe{Pipe: newTypedPipe(mustString("types", "interaction"))}
}

func (p *interactionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	id := str(node, "id")
	p.Builder().ConstructInteraction(id, str(node, "name"), visibility(node))
	var out []pipeline.DataBatch
	for _, child := range nodesAt(node, mustString("keys", "owned_elements")) {
		out = append(out, pipeline.DataBatch{Data: child, Parent: pipeline.WithParentID(pipeline.NewContext(), id)})
	}
	return pipeline.Yield(out)
}

type lifelinePipe struct{ jsonpipe.Pipe }

func newLifelinePipe() *lifelinePipe {
	return &lifelinePipe{Pipe: newTypedPipe(mustString("types", "lifeline"))}
}

func (p *lifelinePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	p.Builder().ConstructLifeline(str(node, "id"), pipeline.ParentID(batch.Parent), str(node, "name"), ref(node, "represent"))
	return pipeline.YieldNone()
}

// messageSortKind maps the node's messageSort/messageKind values through
// the dialect's enum tables. Unmappable or absent values are dropped,
// leaving the canonical defaults (synchCall, complete) to apply.
func messageSortKind(node jsonpipe.Node) (model.MessageSort, model.MessageKind) {
	bag := map[string]any{}
	if v := str(node, "sort"); v != "" {
		bag["sort"] = v
	}
	if v := str(node, "kind"); v != "" {
		bag["kind"] = v
	}
	_ = jsonpipe.MapValueFromKey(bag, "sort", messageSortTable, false)
	_ = jsonpipe.MapValueFromKey(bag, "kind", messageKindTable, false)
	sort, kind := model.SortSynchCall, model.KindComplete
	if v, ok := bag["sort"].(string); ok {
		sort = model.MessageSort(v)
	}
	if v, ok := bag["kind"].(string); ok {
		kind = model.MessageKind(v)
	}
	return sort, kind
}

type messagePipe struct{ jsonpipe.Pipe }

func newMessagePipe() *messagePipe {
	return &messagePipe{Pipe: newTypedPipe(mustString("types", "message"))}
}

func (p *messagePipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	node := batch.Data.(jsonpipe.Node)
	interactionID := pipeline.ParentID(batch.Parent)
	id := str(node, "id")
	sendID, recvID := id+"#send", id+"#recv"
	p.Builder().
		ConstructOccurrenceSpecification(sendID, interactionID, ref(node, "source")).
		ConstructOccurrenceSpecification(recvID, interactionID, ref(node, "target"))
	sort, kind := messageSortKind(node)
	p.Builder().ConstructMessage(builder.MessageParams{
		ID:             id,
		InteractionID:  interactionID,
		Name:           str(node, "name"),
		SendEventID:    sendID,
		ReceiveEventID: recvID,
		Sort:           sort,
		Kind:           kind,
	})
	return pipeline.YieldNone()
}

// buildProcessingTree assembles the full StarUML pipe tree, sharing bld
// across every node.
func buildProcessingTree(bld *builder.Builder) pipeline.Pipe {
	root := newProjectPipe()
	root.SetBuilder(bld)

	mdl := newModelPipe()
	pipeline.Connect(root, mdl)

	class, iface, dt, enum, prim, assoc, gen, real, pkg, interaction :=
		newClassPipe(), newInterfacePipe(), newDataTypePipe(), newEnumerationPipe(), newPrimitiveTypePipe(),
		newAssociationPipe(), newGeneralizationPipe(), newRealizationPipe(), newPackagePipe(), newInteractionPipe()
	for _, child := range []pipeline.Pipe{class, iface, dt, enum, prim, assoc, gen, real, pkg, interaction} {
		pipeline.Connect(mdl, child)
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

package papyrus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
)

const carUML = `<Model id="car-model" name="CarModel">
  <packagedElement id="prim-string" type="uml:PrimitiveType" name="String"/>
  <packagedElement id="class-car" type="uml:Class" name="Car" visibility="public">
    <ownedAttribute id="attr-speed" name="speed" visibility="private" type="prim-string"/>
    <ownedOperation id="op-drive" name="drive" visibility="public"/>
  </packagedElement>
  <packagedElement id="class-driver" type="uml:Class" name="Driver" visibility="public"/>
  <packagedElement id="assoc-drives" type="uml:Association" name="Drives">
    <ownedEnd type="class-driver" role="driver"/>
    <ownedEnd type="class-car" role="vehicle"/>
  </packagedElement>
  <packagedElement id="inter-1" type="uml:Interaction" name="Driving">
    <lifeline id="life-car" name="car" represents="class-car"/>
    <lifeline id="life-driver" name="driver" represents="class-driver"/>
    <message id="msg-start" name="start" source="life-driver" target="life-car" messageSort="createMsg" messageKind="found"/>
  </packagedElement>
</Model>`

const carNotation = `<Diagram id="diagram-car" name="Car Diagram" type="Class">
  <children id="shape-car" semanticElement="class-car"/>
  <children id="shape-driver" semanticElement="class-driver"/>
  <children id="shape-assoc" semanticElement="assoc-drives"/>
</Diagram>`

func TestDetectionAcceptsBothHalves(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)

	umlParsed, err := strat.Parse([]byte(carUML))
	require.NoError(t, err)
	require.NoError(t, strat.DetectionPipe().Detect(pipeline.DataBatch{Data: umlParsed}))

	notationParsed, err := strat.Parse([]byte(carNotation))
	require.NoError(t, err)
	require.NoError(t, strat.DetectionPipe().Detect(pipeline.DataBatch{Data: notationParsed}))
}

func TestDetectionRejectsUnrelatedDocument(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	parsed, err := strat.Parse([]byte(`<XMI version="2.1"><Model/></XMI>`))
	require.NoError(t, err)
	require.Error(t, strat.DetectionPipe().Detect(pipeline.DataBatch{Data: parsed}))
}

// TestRetrieveModelResolvesDiagramAcrossDocuments feeds the .uml and
// .notation halves of the same car model through a shared Builder — the
// notation half's diagram-membership references must resolve against
// entities the uml half registered, regardless of which half is processed
// first.
func TestRetrieveModelResolvesDiagramAcrossDocuments(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	bld := builder.New(builder.Options{ModelID: "car", ModelName: "car", Strict: true})

	umlSrc := datasource.NewMemorySource([]byte(carUML))
	_, err := strat.RetrieveModel(context.Background(), umlSrc, bld, false)
	require.NoError(t, err)

	notationSrc := datasource.NewMemorySource([]byte(carNotation))
	_, err = strat.RetrieveModel(context.Background(), notationSrc, bld, false)
	require.NoError(t, err)

	m, err := bld.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 2)
	require.Len(t, m.Diagrams.ClassDiagrams, 1)
	require.ElementsMatch(t, []string{"class-car", "class-driver", "assoc-drives"}, m.Diagrams.ClassDiagrams[0].Elements.ElementIDs)
}

// TestMessageSortAndKindMapFromSource checks that messageSort/messageKind
// attributes on a .uml message flow through the dialect's enum tables.
func TestMessageSortAndKindMapFromSource(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	src := datasource.NewMemorySource([]byte(carUML))

	m, err := strat.RetrieveModel(context.Background(), src, nil, true)
	require.NoError(t, err)
	require.Len(t, m.Elements.Interactions, 1)
	require.Len(t, m.Elements.Interactions[0].Messages, 1)

	msg := m.Elements.Interactions[0].Messages[0]
	require.Equal(t, "start", msg.Name)
	require.Equal(t, model.SortCreateMsg, msg.Sort)
	require.Equal(t, model.KindFound, msg.Kind)
}

// TestRetrieveModelResolvesNotationBeforeUML proves order-independence: the
// notation half can be fed first, leaving its diagram-membership references
// unresolved until the uml half registers the classes and association.
func TestRetrieveModelResolvesNotationBeforeUML(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	bld := builder.New(builder.Options{ModelID: "car", ModelName: "car", Strict: true})

	notationSrc := datasource.NewMemorySource([]byte(carNotation))
	_, err := strat.RetrieveModel(context.Background(), notationSrc, bld, false)
	require.NoError(t, err)

	umlSrc := datasource.NewMemorySource([]byte(carUML))
	_, err = strat.RetrieveModel(context.Background(), umlSrc, bld, false)
	require.NoError(t, err)

	m, err := bld.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Diagrams.ClassDiagrams, 1)

	var assocDrives *model.Association
	for _, a := range m.Elements.Associations {
		if assoc, ok := a.(*model.Association); ok && assoc.Name == "Drives" {
			assocDrives = assoc
		}
	}
	require.NotNil(t, assocDrives)
}

package eaxmi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
)

const libraryModel = `<XMI version="2.1">
  <Documentation exporter="Enterprise Architect"/>
  <Model>
    <packagedElement id="prim-string" type="uml:PrimitiveType" name="EAJava_String"/>
    <packagedElement id="class-a" type="uml:Class" name="ClassA" visibility="public">
      <ownedAttribute id="attr-a" name="attributeA" visibility="private" type="prim-string"/>
      <ownedAttribute id="attr-b" name="attributeB" visibility="private" type="prim-string"/>
      <ownedOperation id="op-a" name="operationA" visibility="public">
        <ownedParameter id="param-a" name="value" direction="in" type="prim-string"/>
      </ownedOperation>
      <ownedOperation id="op-b" name="operationB" visibility="public"/>
    </packagedElement>
    <packagedElement id="class-b" type="uml:Class" name="ClassB" visibility="public"/>
    <packagedElement id="class-c" type="uml:Class" name="ClassC" visibility="public"/>
    <packagedElement id="assoc-a" type="uml:Association" name="Association A">
      <ownedEnd type="class-b" role="role a"/>
      <ownedEnd type="class-a" role="role b"/>
    </packagedElement>
    <packagedElement id="assoc-b" type="uml:Association" name="Association B">
      <ownedEnd type="class-c" role="role c"/>
      <ownedEnd type="class-a" role="role d"/>
    </packagedElement>
    <packagedElement id="inter-1" type="uml:Interaction" name="Scenario">
      <lifeline id="life-a" name="a" represents="class-a"/>
      <lifeline id="life-b" name="b" represents="class-b"/>
      <message id="msg-1" name="ping" source="life-a" target="life-b" messageSort="asynchCall" messageKind="lost"/>
      <message id="msg-2" name="pong" source="life-b" target="life-a"/>
    </packagedElement>
  </Model>
</XMI>`

const notEAXMI = `<XMI version="2.1"><Model/></XMI>`

func TestDetectionAcceptsWellFormedDocument(t *testing.T) {
	t.Parallel()

	src := datasource.NewMemorySource([]byte(libraryModel))
	strat := New(nil, true)
	parsed, err := strat.Parse(mustBytes(t, src))
	require.NoError(t, err)

	require.NoError(t, strat.DetectionPipe().Detect(pipeline.DataBatch{Data: parsed}))
}

func TestDetectionRejectsDocumentWithoutEADocumentation(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	parsed, err := strat.Parse([]byte(notEAXMI))
	require.NoError(t, err)

	require.Error(t, strat.DetectionPipe().Detect(pipeline.DataBatch{Data: parsed}))
}

func TestRetrieveModelBuildsLibraryModel(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	src := datasource.NewMemorySource([]byte(libraryModel))

	m, err := strat.RetrieveModel(context.Background(), src, nil, true)
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 3)
	require.Len(t, m.Elements.Associations, 2)

	var assocA *model.Association
	for _, a := range m.Elements.Associations {
		if assoc, ok := a.(*model.Association); ok && assoc.Name == "Association A" {
			assocA = assoc
		}
	}
	require.NotNil(t, assocA)
	end1, end2 := assocA.Ends()
	require.Equal(t, "role a", end1.Role)
	require.Equal(t, "role b", end2.Role)
	require.Equal(t, "class-b", end1.Element.ID())
	require.Equal(t, "class-a", end2.Element.ID())
}

// TestMessageSortAndKindMapFromSource checks that a message's
// messageSort/messageKind attributes flow through the dialect's enum
// tables, and that a message carrying neither falls back to the canonical
// defaults.
func TestMessageSortAndKindMapFromSource(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	src := datasource.NewMemorySource([]byte(libraryModel))

	m, err := strat.RetrieveModel(context.Background(), src, nil, true)
	require.NoError(t, err)
	require.Len(t, m.Elements.Interactions, 1)

	messages := map[string]*model.Message{}
	for _, msg := range m.Elements.Interactions[0].Messages {
		messages[msg.Name] = msg
	}
	require.Contains(t, messages, "ping")
	require.Equal(t, model.SortAsynchCall, messages["ping"].Sort)
	require.Equal(t, model.KindLost, messages["ping"].Kind)
	require.Contains(t, messages, "pong")
	require.Equal(t, model.SortSynchCall, messages["pong"].Sort)
	require.Equal(t, model.KindComplete, messages["pong"].Kind)
}

func TestRetrieveModelSharesExternalBuilderAcrossSources(t *testing.T) {
	t.Parallel()

	strat := New(nil, true)
	bld := builder.New(builder.Options{ModelID: "shared", ModelName: "shared", Strict: true})

	src := datasource.NewMemorySource([]byte(libraryModel))
	_, err := strat.RetrieveModel(context.Background(), src, bld, false)
	require.NoError(t, err)

	m, err := bld.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 3)
}

func mustBytes(t *testing.T, src datasource.DataSource) []byte {
	t.Helper()
	data, err := src.Bytes()
	require.NoError(t, err)
	return data
}

package jsonpipe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/pipeline"
)

const sampleMDJ = `{
  "_type": "Project",
  "name": "RootProject",
  "ownedElements": [
    {
      "_type": "UMLClass",
      "_id": "class-1",
      "name": "Widget",
      "visibility": "public",
      "attributes": [
        {"_type": "UMLAttribute", "_id": "attr-1", "name": "count", "type": {"$ref": "type-int"}}
      ]
    }
  ]
}`

func TestParseDecodesRootNode(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	require.Equal(t, "Project", root["_type"])
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{not valid"))
	require.Error(t, err)
}

func TestWalkVisitsNestedOwnedElements(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)

	var types []string
	Walk(root, func(n Node) { types = append(types, n["_type"].(string)) })
	require.Equal(t, []string{"Project", "UMLClass", "UMLAttribute"}, types)
}

func findByType(root Node, discriminator string) Node {
	var found Node
	Walk(root, func(n Node) {
		if found == nil && n["_type"] == discriminator {
			found = n
		}
	})
	return found
}

func TestCanProcessMatchesDiscriminator(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	classNode := findByType(root, "UMLClass")
	require.NotNil(t, classNode)

	p := &Pipe{DiscriminatorKey: "_type", DiscriminatorValue: "UMLClass"}
	require.True(t, p.CanProcess(pipeline.DataBatch{Data: classNode}))

	other := &Pipe{DiscriminatorKey: "_type", DiscriminatorValue: "UMLInterface"}
	require.False(t, other.CanProcess(pipeline.DataBatch{Data: classNode}))
}

func TestCanProcessEvaluatesAttributeConditions(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	classNode := findByType(root, "UMLClass")

	matching := &Pipe{DiscriminatorKey: "_type", DiscriminatorValue: "UMLClass", Conditions: []AttributeCondition{{Key: "visibility", ExpectedValue: "public"}}}
	require.True(t, matching.CanProcess(pipeline.DataBatch{Data: classNode}))

	nonMatching := &Pipe{DiscriminatorKey: "_type", DiscriminatorValue: "UMLClass", Conditions: []AttributeCondition{{Key: "visibility", ExpectedValue: "private"}}}
	require.False(t, nonMatching.CanProcess(pipeline.DataBatch{Data: classNode}))
}

func TestCanProcessErrRaisesOnMissingMandatoryKey(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	classNode := findByType(root, "UMLClass")

	p := &Pipe{DiscriminatorKey: "_type", DiscriminatorValue: "UMLClass", Conditions: []AttributeCondition{{Key: "stereotype", RaiseIfMissing: true}}}
	_, err = p.CanProcessErr(pipeline.DataBatch{Data: classNode})
	require.Error(t, err)

	require.False(t, p.CanProcess(pipeline.DataBatch{Data: classNode}))
}

func TestAttributesForRaisesOnMissingMandatoryKey(t *testing.T) {
	t.Parallel()

	_, err := AttributesFor(Node{"_type": "UMLClass"}, map[string]string{"id": "_id"}, nil)
	require.Error(t, err)
}

func TestAttributesForBuildsAliasMap(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	classNode := findByType(root, "UMLClass")

	bag, err := AttributesFor(classNode, map[string]string{"name": "name"}, map[string]string{"visibility": "visibility"})
	require.NoError(t, err)
	require.Equal(t, "Widget", bag["name"])
	require.Equal(t, "public", bag["visibility"])
}

func TestMapValueFromKeyRewritesValue(t *testing.T) {
	t.Parallel()

	bag := map[string]any{"visibility": "public"}
	table := map[string]string{"public": "public", "private": "private"}

	require.NoError(t, MapValueFromKey(bag, "visibility", table, true))
	require.Equal(t, "public", bag["visibility"])
}

func TestMapValueFromKeyDropsUnknownWhenNotRaising(t *testing.T) {
	t.Parallel()

	bag := map[string]any{"visibility": "bogus"}
	table := map[string]string{"public": "public"}

	require.NoError(t, MapValueFromKey(bag, "visibility", table, false))
	_, present := bag["visibility"]
	require.False(t, present)
}

func TestMapValueFromKeyRaisesOnUnknownWhenConfigured(t *testing.T) {
	t.Parallel()

	bag := map[string]any{"visibility": "bogus"}
	table := map[string]string{"public": "public"}

	require.Error(t, MapValueFromKey(bag, "visibility", table, true))
}

func TestFlattenReferenceResolvesRefIdiom(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(sampleMDJ))
	require.NoError(t, err)
	attrNode := findByType(root, "UMLAttribute")
	require.NotNil(t, attrNode)

	id, ok := FlattenReference(attrNode["type"])
	require.True(t, ok)
	require.Equal(t, "type-int", id)
}

func TestFlattenReferenceRejectsPlainScalar(t *testing.T) {
	t.Parallel()

	_, ok := FlattenReference("type-int")
	require.False(t, ok)
}

func TestFlattenReferenceRejectsMapWithoutRefKey(t *testing.T) {
	t.Parallel()

	_, ok := FlattenReference(map[string]any{"name": "Widget"})
	require.False(t, ok)
}

package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/model"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

func TestConstructClassThenBuildProducesAModel(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "Widget", Visibility: model.VisibilityPublic})

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 1)
	require.Equal(t, "Widget", m.Elements.Classes[0].Name)
}

func TestForwardReferenceResolvesOnLaterRegistration(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructAttribute(AttributeParams{ID: "attr-1", ClassifierID: "class-1", Name: "count", TypeID: "prim-1"})
	b.ConstructPrimitiveType("prim-1", model.PrimitiveInt, "")
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "Widget"})

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes[0].Attributes, 1)
	attr := m.Elements.Classes[0].Attributes[0]
	require.Equal(t, "count", attr.Name)
	require.NotNil(t, attr.Type)
	require.Equal(t, model.PrimitiveInt, attr.Type.(*model.PrimitiveType).Kind)
}

func TestAttributesAttachInSourceOrder(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "Widget"})
	b.ConstructAttribute(AttributeParams{ID: "attr-1", ClassifierID: "class-1", Name: "first"})
	b.ConstructAttribute(AttributeParams{ID: "attr-2", ClassifierID: "class-1", Name: "second"})
	b.ConstructAttribute(AttributeParams{ID: "attr-3", ClassifierID: "class-1", Name: "third"})

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	names := make([]string, len(m.Elements.Classes[0].Attributes))
	for i, a := range m.Elements.Classes[0].Attributes {
		names[i] = a.Name
	}
	require.Equal(t, []string{"first", "second", "third"}, names)
}

func TestStrictBuildSurfacesUnresolvedReference(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructGeneralization("gen-1", "class-missing", "class-also-missing")

	_, err := b.Build(context.Background())
	require.Error(t, err)
	var unresolved *umlerrors.UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
}

func TestNonStrictBuildLeavesUnresolvedReferenceNull(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: false})
	b.ConstructGeneralization("gen-1", "class-missing", "class-also-missing")

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Nil(t, m.Elements.Generalizations[0].Specific)
	require.Nil(t, m.Elements.Generalizations[0].General)
}

func TestDuplicateIDSetsStickyError(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example"})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "First"})
	b.ConstructInterface(ClassifierParams{ID: "class-1", Name: "Second"})

	require.Error(t, b.Err())
	var dup *umlerrors.DuplicateIDError
	require.ErrorAs(t, b.Err(), &dup)
	require.Equal(t, "class-1", dup.ID)

	_, err := b.Build(context.Background())
	require.Error(t, err)
}

func TestStickyErrorMakesSubsequentCallsNoOps(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example"})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "First"})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "Dup"})
	b.ConstructClass(ClassifierParams{ID: "class-2", Name: "Never added"})

	require.Len(t, b.Model().Elements.Classes, 1)
}

func TestAssociationEndsIdiomI5(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "A"})
	b.ConstructClass(ClassifierParams{ID: "class-2", Name: "B"})
	b.ConstructDirectedAssociation("assoc-1", "uses",
		AssociationEndParams{ElementID: "class-1", Role: "client"},
		AssociationEndParams{ElementID: "class-2", Role: "server"},
	)

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	assoc := m.Elements.Associations[0].(*model.DirectedAssociation)
	end1, end2 := assoc.Ends()
	require.Same(t, assoc.Source, end1)
	require.Same(t, assoc.Target, end2)
	require.Equal(t, "class-1", end1.Element.ID())
	require.Equal(t, "class-2", end2.Element.ID())
}

func TestClearResetsModelAndError(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example"})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "A"})
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "Dup"})
	require.Error(t, b.Err())

	b.Clear()
	require.NoError(t, b.Err())
	require.Empty(t, b.Model().Elements.Classes)
}

func TestPackageElementsAttachInOrderAcrossDeferrals(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructPackage("pkg-1", "root", model.VisibilityPublic)
	b.AddPackageElement("pkg-1", "class-1")
	b.AddPackageElement("pkg-1", "class-2")
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "A"})
	b.ConstructClass(ClassifierParams{ID: "class-2", Name: "B"})

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, m.Elements.Packages[0].Elements, 2)
	require.Equal(t, "class-1", m.Elements.Packages[0].Elements[0].ID())
	require.Equal(t, "class-2", m.Elements.Packages[0].Elements[1].ID())
}

func TestInteractionFragmentsPreserveOrder(t *testing.T) {
	t.Parallel()

	b := New(Options{ModelID: "model-1", ModelName: "Example", Strict: true})
	b.ConstructInteraction("it-1", "scenario", model.VisibilityPublic)
	b.ConstructClass(ClassifierParams{ID: "class-1", Name: "A"})
	b.ConstructLifeline("lifeline-1", "it-1", ":A", "class-1")
	b.ConstructOccurrenceSpecification("occ-1", "it-1", "lifeline-1")
	b.ConstructCombinedFragment("cf-1", "it-1", model.OperatorAlt, []string{"lifeline-1"})
	b.ConstructOccurrenceSpecification("occ-2", "it-1", "lifeline-1")

	m, err := b.Build(context.Background())
	require.NoError(t, err)
	it := m.Elements.Interactions[0]
	require.Len(t, it.Fragments, 3)
	_, ok0 := it.Fragments[0].(*model.OccurrenceSpecification)
	_, ok1 := it.Fragments[1].(*model.CombinedFragment)
	_, ok2 := it.Fragments[2].(*model.OccurrenceSpecification)
	require.True(t, ok0)
	require.True(t, ok1)
	require.True(t, ok2)
}

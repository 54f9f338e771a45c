package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel("model-1", "Example")

	require.Equal(t, "model-1", m.ID())
	require.Equal(t, "Example", m.Name)
	require.Equal(t, DefaultVisibility, m.Visibility)
	require.NotNil(t, m.Metadata)
	require.Same(t, m, m.Owner(), "a fresh Model owns itself")
	require.Empty(t, m.Elements.Classes)
	require.Empty(t, m.Diagrams.ClassDiagrams)
}

func TestDiagramElementsReferenceByIDOnly(t *testing.T) {
	t.Parallel()

	cd := &ClassDiagram{
		NamedElementFields: NamedElementFields{Name: "Overview", Visibility: VisibilityPublic},
		Elements:           ClassDiagramElements{ElementIDs: []string{"class-1", "class-2"}},
	}
	cd.SetID("diagram-1")

	require.Equal(t, []string{"class-1", "class-2"}, cd.Elements.ElementIDs)
}

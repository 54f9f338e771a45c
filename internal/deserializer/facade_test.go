package deserializer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/strategy"
	_ "github.com/umltranslator/translator-go/internal/strategy/eaxmi"
	_ "github.com/umltranslator/translator-go/internal/strategy/papyrus"
	_ "github.com/umltranslator/translator-go/internal/strategy/staruml"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

const eaxmiLibrary = `<XMI version="2.1">
  <Documentation exporter="Enterprise Architect"/>
  <Model>
    <packagedElement id="class-a" type="uml:Class" name="ClassA" visibility="public"/>
    <packagedElement id="class-b" type="uml:Class" name="ClassB" visibility="public"/>
  </Model>
</XMI>`

const papyrusUML = `<Model id="car-model" name="CarModel">
  <packagedElement id="class-car" type="uml:Class" name="Car" visibility="public"/>
  <packagedElement id="class-driver" type="uml:Class" name="Driver" visibility="public"/>
</Model>`

const papyrusNotation = `<Diagram id="diagram-car" name="Car Diagram" type="Class">
  <children id="shape-car" semanticElement="class-car"/>
  <children id="shape-driver" semanticElement="class-driver"/>
</Diagram>`

const notAnything = `not xml and not json`

const unknownJSON = `{"_type": "SomethingElse", "name": "whatever"}`

const eaxmiConflicting = `<XMI version="2.1">
  <Documentation exporter="Enterprise Architect"/>
  <Model>
    <packagedElement id="class-a" type="uml:Class" name="Renamed" visibility="public"/>
  </Model>
</XMI>`

func TestDeserializeSingleSourceAutodetects(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m1", Strict: true})
	m, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(eaxmiLibrary)},
	})
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 2)
}

// TestDeserializeMultiSourceSharesBuilder covers a Papyrus-style split
// translation: the .uml and .notation halves arrive as two separate
// DataSources in one Deserialize call and must resolve against the same
// accumulated Model.
func TestDeserializeMultiSourceSharesBuilder(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m2", Strict: true, Format: strategy.Format("papyrus")})
	m, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(papyrusUML), []byte(papyrusNotation)},
	})
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 2)
	require.Len(t, m.Diagrams.ClassDiagrams, 1)
}

func TestDeserializeUnsupportedFormatAborts(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m3"})
	_, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(notAnything)},
	})
	require.Error(t, err)
}

// TestDeserializeDuplicateIDAcrossSourcesAborts feeds two sources carrying
// the same class id under different names; the second registration must
// surface a DuplicateIDError rather than silently overwriting the first.
func TestDeserializeDuplicateIDAcrossSourcesAborts(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m5", Strict: true})
	_, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(eaxmiLibrary), []byte(eaxmiConflicting)},
	})
	require.Error(t, err)
	var dup *umlerrors.DuplicateIDError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "class-a", dup.ID)
}

// TestDeserializeRejectsUnknownJSONRoot covers a well-formed JSON document
// no registered strategy claims: the registry raises UnsupportedFormat.
func TestDeserializeRejectsUnknownJSONRoot(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m6"})
	_, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(unknownJSON)},
	})
	require.Error(t, err)
	var unsupported *umlerrors.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
}

// TestDeserializeIsIdempotentAcrossFacades translates the same source twice
// through two fresh Facades and expects structurally equal element sets.
func TestDeserializeIsIdempotentAcrossFacades(t *testing.T) {
	t.Parallel()

	first, err := New(Options{ModelID: "m7", Strict: true}).Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(eaxmiLibrary)},
	})
	require.NoError(t, err)

	second, err := New(Options{ModelID: "m7", Strict: true}).Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(eaxmiLibrary)},
	})
	require.NoError(t, err)

	require.Len(t, second.Elements.Classes, len(first.Elements.Classes))
	for i, c := range first.Elements.Classes {
		require.Equal(t, c.ID(), second.Elements.Classes[i].ID())
		require.Equal(t, c.Name, second.Elements.Classes[i].Name)
	}
}

// TestClearIsolatesSubsequentTranslations proves that a Facade which failed
// mid-translation does not leak that partial state into the next call: a
// successful single-source translation run immediately after a failed
// multi-source run must see only its own two classes, none carried over.
func TestClearIsolatesSubsequentTranslations(t *testing.T) {
	t.Parallel()

	facade := New(Options{ModelID: "m4", Strict: true})

	_, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(eaxmiLibrary), []byte(notAnything)},
	})
	require.Error(t, err)

	m, err := facade.Deserialize(context.Background(), datasource.Inputs{
		DataBatches: [][]byte{[]byte(papyrusUML)},
	})
	require.NoError(t, err)
	require.Len(t, m.Elements.Classes, 2)
}

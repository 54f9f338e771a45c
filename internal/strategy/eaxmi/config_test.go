package eaxmi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// primitiveMapGolden is a YAML golden fixture for the EAJava_* -> canonical
// PrimitiveKind table config.go hardcodes as a Go map literal. Expressing
// the expected mapping in YAML keeps the golden copy readable and diffable
// independently of Go map literal syntax.
const primitiveMapGolden = `
EAJava_int: int
EAJava_long: int
EAJava_double: real
EAJava_float: float
EAJava_String: string
EAJava_boolean: boolean
EAJava_char: char
EAJava_void: void
`

func TestPrimitiveMapMatchesGoldenFixture(t *testing.T) {
	t.Parallel()

	var want map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(primitiveMapGolden), &want))

	got := mustStringMap("primitive_map")
	require.Equal(t, want, got)
}

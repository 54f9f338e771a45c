package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("model.xmi", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "model.xmi", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "model.xmi")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("elements.classes[1].name", "must not be empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "elements.classes[1].name", validationErr.Field)
	require.Contains(t, validationErr.Message, "must not be empty")
}

func TestStrategyErrorIncludesStrategyName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("already registered")
	err := NewStrategyError("ea_xmi", underlying)

	var strategyErr *StrategyError
	require.ErrorAs(t, err, &strategyErr)
	require.Equal(t, "ea_xmi", strategyErr.Strategy)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestUnsupportedFormatErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedFormatError("ea_xmi", "model.xmi", "root tag mismatch")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, "ea_xmi", unsupported.Format)
	require.Contains(t, err.Error(), "model.xmi")
	require.Contains(t, err.Error(), "root tag mismatch")
}

func TestInvalidFormatErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("malformed element")
	err := NewInvalidFormatError("papyrus", "Class[id=c1]", "missing mandatory attribute", underlying)

	var invalid *InvalidFormatError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "Class[id=c1]", invalid.Location)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestConfigurationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewConfigurationError("TAGS.model", "key not present in namespace")

	var configErr *ConfigurationError
	require.ErrorAs(t, err, &configErr)
	require.Contains(t, err.Error(), "TAGS.model")
}

func TestAmbiguousFormatErrorListsStrategies(t *testing.T) {
	t.Parallel()

	err := NewAmbiguousFormatError("model.xmi", []string{"ea_xmi", "papyrus_uml"})

	var ambiguous *AmbiguousFormatError
	require.ErrorAs(t, err, &ambiguous)
	require.Equal(t, []string{"ea_xmi", "papyrus_uml"}, ambiguous.Strategies)
	require.Contains(t, err.Error(), "ea_xmi")
	require.Contains(t, err.Error(), "papyrus_uml")
}

func TestDuplicateIDErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewDuplicateIDError("class-1")

	var duplicate *DuplicateIDError
	require.ErrorAs(t, err, &duplicate)
	require.Equal(t, "class-1", duplicate.ID)
}

func TestUnresolvedReferenceErrorListsIDs(t *testing.T) {
	t.Parallel()

	err := NewUnresolvedReferenceError([]string{"type-9", "class-2"})

	var unresolved *UnresolvedReferenceError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, []string{"type-9", "class-2"}, unresolved.IDs)
}

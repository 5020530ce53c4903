package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("themes/dark.yaml", 4, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "themes/dark.yaml", parseErr.Path)
	require.Equal(t, 4, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: themes/dark.yaml:4: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themes/dark.yaml", 0, stdErrors.New("permission denied"))
	require.Equal(t, "parse error: themes/dark.yaml: permission denied", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("dark.color_palette", "color_palette failed validation for tag 'min'", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "dark.color_palette", validationErr.Field)
	require.Contains(t, validationErr.Message, "min")
	require.Contains(t, err.Error(), "dark.color_palette")
}

func TestRenderErrorIncludesPanel(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("invalid data range")
	err := NewRenderError("GDP Growth", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "GDP Growth", renderErr.Panel)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"GDP Growth"`)
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var renderErr *RenderError
	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, renderErr.Error())
	require.Nil(t, renderErr.Unwrap())
}

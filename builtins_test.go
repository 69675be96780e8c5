package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValueDefinitionsRegistersBuiltinTypes(t *testing.T) {
	e, err := New(Options{SeedKeywords: true})
	require.NoError(t, err)
	e.InitValueDefinitions()

	_, err = e.RegisterProperty("width", "<length> | <percentage> | auto", "auto")
	require.NoError(t, err)
	_, err = e.RegisterProperty("color", "<color> | none", "none")
	require.NoError(t, err)

	sel, err := e.CreateSelector("button")
	require.NoError(t, err)
	e.AddRule(sel, map[string]string{
		"width": "50%",
		"color": "#ff0000",
	})

	rules := e.QuerySelector(sel)
	require.Len(t, rules, 1)
	require.Zero(t, e.Log.Length())
}

func TestInitValueDefinitionsLengthUnitPrecedence(t *testing.T) {
	v, ok := parseLengthToken("10rem")
	require.True(t, ok)
	assert.Equal(t, "rem", v.Unit)
	assert.Equal(t, float64(10), v.Numeric)

	v, ok = parseLengthToken("10em")
	require.True(t, ok)
	assert.Equal(t, "em", v.Unit)
	assert.Equal(t, float64(10), v.Numeric)
}

func TestInitValueDefinitionsColorBridgesToParseColorString(t *testing.T) {
	v, ok := parseColorToken("#00ff00")
	require.True(t, ok)
	assert.Equal(t, uint8(0), v.RGBA.R)
	assert.Equal(t, uint8(255), v.RGBA.G)

	_, ok = parseColorToken("not-a-color")
	assert.False(t, ok)
}

func TestDestroyValueDefinitionsClearsRegisteredTypes(t *testing.T) {
	e, err := New(Options{SeedKeywords: true})
	require.NoError(t, err)
	e.InitValueDefinitions()
	e.DestroyValueDefinitions()

	_, ok := e.Types.Resolve("length")
	assert.False(t, ok)
}
